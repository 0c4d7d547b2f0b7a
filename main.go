package main

import (
	"github.com/LilyAnderssonLee/EVICT/cmd"
)

func main() {
	cmd.Execute() // initialize cobra commands
}
