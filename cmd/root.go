// Package cmd is for command line interactions with the evict application
package cmd

import (
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// RootCmd represents the base command when called without any subcommands.
var RootCmd = &cobra.Command{
	Use: "evict",
	Short: `Classify sequence-assembly contigs into enterovirus genotypes from
BLAST alignments and normalize contig orientation before reporting`,
	Version: "0.1.0",
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the RootCmd.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}

// bindThresholdFlags points Viper at the executing command's flags so
// config.New picks up any threshold overrides from the command line.
func bindThresholdFlags(cmd *cobra.Command) {
	keys := []string{
		"suggest-min-rows",
		"suggest-min-identity",
		"suggest-min-bitscore",
		"min-length",
		"min-coverage",
	}

	for _, key := range keys {
		if f := cmd.Flags().Lookup(key); f != nil {
			viper.BindPFlag(key, f)
		}
	}
}
