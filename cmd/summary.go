package cmd

import (
	"os"

	"github.com/LilyAnderssonLee/EVICT/internal/evict"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

// summaryCmd aggregates a raw BLAST table to per-group statistics.
var summaryCmd = &cobra.Command{
	Use:   "summary [blast-file]",
	Short: "Summarize a header-less BLAST table per contig, taxon and genotype",
	Long: `Summarize a header-less BLAST table per contig, taxon and genotype.

Writes "<blast-file>.summary.csv" with one row per (qseqid, taxid,
scomname) group: the hit count and min/max/median of percent identity,
alignment length and bit score. Rows with unparsable numeric fields are
dropped.`,
	Args: cobra.ExactArgs(1),
	Run:  runSummary,
}

func runSummary(cmd *cobra.Command, args []string) {
	blastFile := args[0]

	if _, err := os.Stat(blastFile); err != nil {
		log.Fatalf("BLAST file not found: %s", blastFile)
	}

	hits, err := evict.ReadRawHits(blastFile)
	if err != nil {
		log.Fatal(err)
	}

	output := blastFile + ".summary.csv"
	if err := evict.WriteSummary(output, evict.Summarize(hits)); err != nil {
		log.Fatal(err)
	}

	log.Info("saved BLAST summary", "output", output)
}

func init() {
	RootCmd.AddCommand(summaryCmd)
}
