package evict

import (
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// utf8BOM leads new genotype files so spreadsheet software picks the
// right encoding for the Swedish sentinels.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// SampleName derives the sample name from a BLAST file path:
// its base name with the ".blast" extension stripped.
func SampleName(blastPath string) string {
	return strings.TrimSuffix(filepath.Base(blastPath), ".blast")
}

// Genotype classifies one sample from its header-bearing BLAST table:
// decode contig identities, apply the quality filter, then run the
// suggestion cascade. A sample without qualifying contigs gets the
// no-contig sentinel; opting out of suggestion skips all computation.
// Only a missing input or an undecodable query id is an error.
func Genotype(blastPath string, t Thresholds, minLength int, minCoverage float64, noSuggest bool) (string, error) {
	if noSuggest {
		return SuggestionDisabled, nil
	}

	hits, err := ReadHits(blastPath)
	if err != nil {
		return "", err
	}

	decoded, err := DecodeHits(hits)
	if err != nil {
		return "", err
	}

	passing, _, err := Filter(decoded, minLength, minCoverage)
	if errors.Is(err, ErrNoContigs) {
		return SuggestionNoContig, nil
	}
	if err != nil {
		return "", err
	}

	return Suggest(passing, t), nil
}

// AppendGenotype appends one result row to the genotype CSV, creating
// the file with a BOM and header when it does not exist yet.
func AppendGenotype(path, ticket, sample, genotype string) error {
	_, statErr := os.Stat(path)
	newFile := os.IsNotExist(statErr)

	out, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0666)
	if err != nil {
		return fmt.Errorf("failed to open genotype file %s: %v", path, err)
	}
	defer out.Close()

	if newFile {
		if _, err := out.Write(utf8BOM); err != nil {
			return fmt.Errorf("failed to write genotype file %s: %v", path, err)
		}
	}

	w := csv.NewWriter(out)
	if newFile {
		if err := w.Write([]string{"Ticket", "Sample", "Genotype"}); err != nil {
			return err
		}
	}
	if err := w.Write([]string{ticket, sample, genotype}); err != nil {
		return err
	}

	w.Flush()
	return w.Error()
}
