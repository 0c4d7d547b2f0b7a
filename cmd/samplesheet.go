package cmd

import (
	"github.com/LilyAnderssonLee/EVICT/internal/evict"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

// samplesheetCmd prepares a taxprofiler samplesheet from a run directory.
var samplesheetCmd = &cobra.Command{
	Use:   "samplesheet [directory]",
	Short: "Prepare a samplesheet CSV from a directory of sample data",
	Long: `Prepare a samplesheet CSV from a directory of sample data.

Each subdirectory holding .fastq.gz files becomes one row; pairs are
assigned in lexicographic order. The sheet is written next to the data
as "<directory>_samplesheet.csv".`,
	Args: cobra.ExactArgs(1),
	Run:  runSamplesheet,
}

func runSamplesheet(cmd *cobra.Command, args []string) {
	path, err := evict.WriteSamplesheet(args[0])
	if err != nil {
		log.Fatal(err)
	}

	log.Info("created samplesheet", "output", path)
}

func init() {
	RootCmd.AddCommand(samplesheetCmd)
}
