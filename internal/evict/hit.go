// Package evict classifies assembly contigs into enterovirus genotypes
// from BLAST alignment results and normalizes contig orientation.
package evict

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/shenwei356/xopen"
)

// hitColumns is the fixed column order of a raw (header-less) BLAST table.
var hitColumns = []string{
	"qseqid", "sseqid", "evalue", "bitscore", "pident", "qlen",
	"qstart", "qend", "sstart", "send", "taxid", "scomname", "length",
}

// Hit is one BLAST alignment result, pairing a query contig to a
// reference subject sequence.
type Hit struct {
	// query sequence id, eg "NODE_1_length_7480_cov_512.652072"
	QSeqID string

	// subject sequence id in the reference database
	SSeqID string

	// expect value of the alignment
	EValue float64

	// bit score of the alignment
	BitScore float64

	// percentage identity over the aligned region (0-100)
	PIdent float64

	// full length of the query contig
	QLen int

	// start index of the alignment on the query (1-based)
	QStart int

	// end index of the alignment on the query (1-based)
	QEnd int

	// start index of the alignment on the subject (1-based)
	SStart int

	// end index of the alignment on the subject (1-based)
	SEnd int

	// NCBI taxonomy id of the subject
	TaxID int

	// subject common name, used as the genotype label
	SComName string

	// length of the alignment
	Length int
}

// parseHit coerces one row of column values to a Hit. An error means one
// of the nine numeric fields failed to parse and the row should be
// excluded from aggregation.
func parseHit(fields []string) (h Hit, err error) {
	h.QSeqID = fields[0]
	h.SSeqID = fields[1]
	h.SComName = fields[11]

	if h.EValue, err = strconv.ParseFloat(fields[2], 64); err != nil {
		return h, fmt.Errorf("bad evalue %q: %v", fields[2], err)
	}
	if h.BitScore, err = strconv.ParseFloat(fields[3], 64); err != nil {
		return h, fmt.Errorf("bad bitscore %q: %v", fields[3], err)
	}
	if h.PIdent, err = strconv.ParseFloat(fields[4], 64); err != nil {
		return h, fmt.Errorf("bad pident %q: %v", fields[4], err)
	}
	if h.QLen, err = strconv.Atoi(fields[5]); err != nil {
		return h, fmt.Errorf("bad qlen %q: %v", fields[5], err)
	}
	if h.QStart, err = strconv.Atoi(fields[6]); err != nil {
		return h, fmt.Errorf("bad qstart %q: %v", fields[6], err)
	}
	if h.QEnd, err = strconv.Atoi(fields[7]); err != nil {
		return h, fmt.Errorf("bad qend %q: %v", fields[7], err)
	}
	if h.SStart, err = strconv.Atoi(fields[8]); err != nil {
		return h, fmt.Errorf("bad sstart %q: %v", fields[8], err)
	}
	if h.SEnd, err = strconv.Atoi(fields[9]); err != nil {
		return h, fmt.Errorf("bad send %q: %v", fields[9], err)
	}
	if h.TaxID, err = strconv.Atoi(fields[10]); err != nil {
		return h, fmt.Errorf("bad taxid %q: %v", fields[10], err)
	}
	if h.Length, err = strconv.Atoi(fields[12]); err != nil {
		return h, fmt.Errorf("bad length %q: %v", fields[12], err)
	}

	return h, nil
}

// readHitRows parses typed hits out of a comma-delimited BLAST table.
// Rows with a numeric field that fails to coerce are dropped.
func readHitRows(r io.Reader, header bool) (hits []Hit, err error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	first := true
	for {
		fields, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read BLAST table: %v", err)
		}

		if first && header {
			first = false
			continue
		}
		first = false

		if len(fields) < len(hitColumns) {
			continue // short row, nothing to salvage
		}

		hit, err := parseHit(fields)
		if err != nil {
			continue // numeric coercion failed, excluded from aggregation
		}
		hits = append(hits, hit)
	}

	return hits, nil
}

// ReadHits reads a header-bearing BLAST table from the local FS
// to a slice of typed hits.
func ReadHits(path string) ([]Hit, error) {
	fh, err := xopen.Ropen(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open BLAST table %s: %v", path, err)
	}
	defer fh.Close()

	return readHitRows(fh, true)
}

// ReadRawHits reads a header-less BLAST table, assuming the fixed
// qseqid..length column order of the upstream blastn invocation.
func ReadRawHits(path string) ([]Hit, error) {
	fh, err := xopen.Ropen(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open BLAST table %s: %v", path, err)
	}
	defer fh.Close()

	return readHitRows(fh, false)
}
