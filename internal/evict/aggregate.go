package evict

import (
	"encoding/csv"
	"fmt"
	"os"
	"sort"
	"strconv"
)

// SummaryRow is the aggregated statistics for one
// (qseqid, taxid, scomname) group of hits.
type SummaryRow struct {
	QSeqID   string
	TaxID    int
	SComName string

	// number of hits supporting the group
	Count int

	MinPIdent    float64
	MaxPIdent    float64
	MedianPIdent float64

	MinLength    int
	MaxLength    int
	MedianLength float64

	MinBitScore    float64
	MaxBitScore    float64
	MedianBitScore float64
}

// summaryKey groups hits for the summary table.
type summaryKey struct {
	qseqid   string
	taxid    int
	scomname string
}

// median of vals, per the standard definition: the middle value of the
// sorted slice, or the mean of the two central values for even counts.
// vals is sorted in place.
func median(vals []float64) float64 {
	sort.Float64s(vals)

	mid := len(vals) / 2
	if len(vals)%2 == 1 {
		return vals[mid]
	}

	return (vals[mid-1] + vals[mid]) / 2.0
}

// Summarize aggregates hits per (qseqid, taxid, scomname): the count of
// supporting hits and min/max/median of percent identity, alignment
// length and bit score. Rows come out in first-appearance order.
func Summarize(hits []Hit) (rows []SummaryRow) {
	groups := make(map[summaryKey][]Hit)
	var order []summaryKey
	for _, hit := range hits {
		key := summaryKey{hit.QSeqID, hit.TaxID, hit.SComName}
		if _, seen := groups[key]; !seen {
			order = append(order, key)
		}
		groups[key] = append(groups[key], hit)
	}

	for _, key := range order {
		group := groups[key]

		row := SummaryRow{
			QSeqID:   key.qseqid,
			TaxID:    key.taxid,
			SComName: key.scomname,
			Count:    len(group),

			MinPIdent:   group[0].PIdent,
			MaxPIdent:   group[0].PIdent,
			MinLength:   group[0].Length,
			MaxLength:   group[0].Length,
			MinBitScore: group[0].BitScore,
			MaxBitScore: group[0].BitScore,
		}

		pidents := make([]float64, 0, len(group))
		lengths := make([]float64, 0, len(group))
		bitscores := make([]float64, 0, len(group))
		for _, hit := range group {
			if hit.PIdent < row.MinPIdent {
				row.MinPIdent = hit.PIdent
			}
			if hit.PIdent > row.MaxPIdent {
				row.MaxPIdent = hit.PIdent
			}
			if hit.Length < row.MinLength {
				row.MinLength = hit.Length
			}
			if hit.Length > row.MaxLength {
				row.MaxLength = hit.Length
			}
			if hit.BitScore < row.MinBitScore {
				row.MinBitScore = hit.BitScore
			}
			if hit.BitScore > row.MaxBitScore {
				row.MaxBitScore = hit.BitScore
			}

			pidents = append(pidents, hit.PIdent)
			lengths = append(lengths, float64(hit.Length))
			bitscores = append(bitscores, hit.BitScore)
		}

		row.MedianPIdent = median(pidents)
		row.MedianLength = median(lengths)
		row.MedianBitScore = median(bitscores)

		rows = append(rows, row)
	}

	return rows
}

// labelMedians computes the median of value per genotype label.
func labelMedians(hits []ContigHit, value func(Hit) float64) map[string]float64 {
	groups := make(map[string][]float64)
	for _, hit := range hits {
		groups[hit.SComName] = append(groups[hit.SComName], value(hit.Hit))
	}

	medians := make(map[string]float64, len(groups))
	for label, vals := range groups {
		medians[label] = median(vals)
	}

	return medians
}

// contigMedians computes the median of value per contig name.
func contigMedians(hits []ContigHit, value func(ContigHit) float64) map[string]float64 {
	groups := make(map[string][]float64)
	for _, hit := range hits {
		groups[hit.Contig.Name] = append(groups[hit.Contig.Name], value(hit))
	}

	medians := make(map[string]float64, len(groups))
	for contig, vals := range groups {
		medians[contig] = median(vals)
	}

	return medians
}

// maxMedianLabel returns the label with the highest median. Ties go to
// the lexicographically first label so repeated runs stay deterministic.
func maxMedianLabel(medians map[string]float64) (best string, found bool) {
	labels := make([]string, 0, len(medians))
	for label := range medians {
		labels = append(labels, label)
	}
	sort.Strings(labels)

	for _, label := range labels {
		if !found || medians[label] > medians[best] {
			best = label
			found = true
		}
	}

	return best, found
}

// WriteSummary writes summary rows as a CSV table to the local FS.
func WriteSummary(path string, rows []SummaryRow) error {
	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create summary file %s: %v", path, err)
	}
	defer out.Close()

	w := csv.NewWriter(out)
	if err := w.Write([]string{
		"qseqid", "taxid", "scomname", "count",
		"min_pident", "max_pident", "median_pident",
		"min_length", "max_length", "median_length",
		"min_bitscore", "max_bitscore", "median_bitscore",
	}); err != nil {
		return err
	}

	for _, row := range rows {
		if err := w.Write([]string{
			row.QSeqID,
			strconv.Itoa(row.TaxID),
			row.SComName,
			strconv.Itoa(row.Count),
			formatFloat(row.MinPIdent),
			formatFloat(row.MaxPIdent),
			formatFloat(row.MedianPIdent),
			strconv.Itoa(row.MinLength),
			strconv.Itoa(row.MaxLength),
			formatFloat(row.MedianLength),
			formatFloat(row.MinBitScore),
			formatFloat(row.MaxBitScore),
			formatFloat(row.MedianBitScore),
		}); err != nil {
			return err
		}
	}

	w.Flush()
	return w.Error()
}

// formatFloat renders a float without trailing zero noise.
func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
