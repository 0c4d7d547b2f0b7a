package cmd

import (
	"os"

	"github.com/LilyAnderssonLee/EVICT/config"
	"github.com/LilyAnderssonLee/EVICT/internal/evict"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

// reportCmd renders the per-sample HTML typing report.
var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Generate an enterovirus typing report from BLAST results",
	Long: `Generate an enterovirus typing report from BLAST results.

A normal report is computed from quality-filtered hits. When no contig
passes the filter, or the contig FASTA is missing, a warning report is
generated from the unfiltered hits instead so the sample never goes
unreported.`,
	Run: runReport,
}

func runReport(cmd *cobra.Command, args []string) {
	bindThresholdFlags(cmd)
	c := config.New()

	ticket, _ := cmd.Flags().GetString("ticket")
	blastFile, _ := cmd.Flags().GetString("blast-file")
	outputDir, _ := cmd.Flags().GetString("output-dir")
	fastaFile, _ := cmd.Flags().GetString("fasta")

	if _, err := os.Stat(blastFile); err != nil {
		log.Fatalf("BLAST file not found: %s", blastFile)
	}

	thresholds := evict.Thresholds{
		MinRows:     c.SuggestMinRows,
		MinIdentity: c.SuggestMinIdentity,
		MinBitScore: c.SuggestMinBitScore,
	}
	sample := evict.SampleName(blastFile)

	data, err := evict.BuildReport(blastFile, fastaFile, thresholds, c.MinContigLength, c.MinCoverage)
	if err != nil {
		log.Warn("normal report failed, generating warning report from unfiltered contigs", "sample", sample, "err", err)

		if data, err = evict.BuildFallbackReport(blastFile, fastaFile); err != nil {
			log.Fatalf("failed to generate warning report for %s: %v", sample, err)
		}
	}

	data.Sample = sample
	data.Ticket = ticket

	path, err := evict.WriteReport(outputDir, ticket, data)
	if err != nil {
		log.Fatal(err)
	}

	log.Info("saved report", "output", path, "fallback", data.Fallback)
}

// set flags
func init() {
	reportCmd.Flags().StringP("ticket", "t", "", "ticket number of the sequencing run")
	reportCmd.Flags().StringP("blast-file", "b", "", "path to the BLAST result file (.blast)")
	reportCmd.Flags().StringP("output-dir", "o", "results", "base output directory")
	reportCmd.Flags().StringP("fasta", "f", "", "contig FASTA shown in the report")
	reportCmd.Flags().Int("suggest-min-rows", config.DefaultMinRows, "minimum number of hits required for auto-suggestion")
	reportCmd.Flags().Float64("suggest-min-identity", config.DefaultMinIdentity, "minimum max %-identity required for auto-suggestion")
	reportCmd.Flags().Float64("suggest-min-bitscore", config.DefaultMinBitScore, "minimum max bitscore required for auto-suggestion")
	reportCmd.Flags().Int("min-length", config.DefaultMinContigLength, "minimum contig length (bp) for the quality filter")
	reportCmd.Flags().Float64("min-coverage", config.DefaultMinCoverage, "minimum contig coverage (x) for the quality filter")

	reportCmd.MarkFlagRequired("ticket")
	reportCmd.MarkFlagRequired("blast-file")

	RootCmd.AddCommand(reportCmd)
}
