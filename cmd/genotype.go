package cmd

import (
	"os"

	"github.com/LilyAnderssonLee/EVICT/config"
	"github.com/LilyAnderssonLee/EVICT/internal/evict"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

// genotypeCmd classifies one sample's BLAST table to a genotype row.
var genotypeCmd = &cobra.Command{
	Use:   "genotype",
	Short: "Suggest a genotype for one sample from its BLAST results",
	Long: `Suggest a genotype for one sample from its BLAST results.

Hits are filtered on contig length and coverage, then a genotype is
suggested only when a single label holds the highest identity, the
highest bit score and both of the highest per-genotype medians, with
enough supporting hits. Anything less conclusive is flagged for manual
assessment. One result row is appended to the output CSV per run.`,
	Run: runGenotype,
}

func runGenotype(cmd *cobra.Command, args []string) {
	bindThresholdFlags(cmd)
	c := config.New()

	ticket, _ := cmd.Flags().GetString("ticket")
	blastFile, _ := cmd.Flags().GetString("blast-file")
	output, _ := cmd.Flags().GetString("output")
	noSuggest, _ := cmd.Flags().GetBool("no-suggest")

	if _, err := os.Stat(blastFile); err != nil {
		log.Fatalf("BLAST file not found: %s", blastFile)
	}

	genotype, err := evict.Genotype(blastFile, evict.Thresholds{
		MinRows:     c.SuggestMinRows,
		MinIdentity: c.SuggestMinIdentity,
		MinBitScore: c.SuggestMinBitScore,
	}, c.MinContigLength, c.MinCoverage, noSuggest)
	if err != nil {
		log.Fatal(err)
	}

	sample := evict.SampleName(blastFile)
	if err := evict.AppendGenotype(output, ticket, sample, genotype); err != nil {
		log.Fatal(err)
	}

	log.Info("added genotype", "ticket", ticket, "sample", sample, "genotype", genotype)
	log.Info("saved summary", "output", output)
}

// set flags
func init() {
	genotypeCmd.Flags().StringP("ticket", "t", "", "ticket number of the sequencing run")
	genotypeCmd.Flags().StringP("blast-file", "b", "", "path to the BLAST result file (.blast)")
	genotypeCmd.Flags().StringP("output", "o", "genotype.csv", "output CSV path, appended to across samples")
	genotypeCmd.Flags().Int("suggest-min-rows", config.DefaultMinRows, "minimum number of hits required for auto-suggestion")
	genotypeCmd.Flags().Float64("suggest-min-identity", config.DefaultMinIdentity, "minimum max %-identity required for auto-suggestion")
	genotypeCmd.Flags().Float64("suggest-min-bitscore", config.DefaultMinBitScore, "minimum max bitscore required for auto-suggestion")
	genotypeCmd.Flags().Bool("no-suggest", false, "skip auto-suggestion and report it as disabled")

	genotypeCmd.MarkFlagRequired("ticket")
	genotypeCmd.MarkFlagRequired("blast-file")

	RootCmd.AddCommand(genotypeCmd)
}
