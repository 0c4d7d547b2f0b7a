package evict

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrNoContigs signals that no contig passed the length and coverage
// thresholds. It is a condition, not a failure: callers fall back to the
// unfiltered hit table and flag the result for manual assessment.
var ErrNoContigs = errors.New("no contigs meet the length and coverage thresholds")

// ContigIdentity is the assembly metadata encoded in a query sequence id
// of the form "<name>_length_<len>_cov_<coverage>".
type ContigIdentity struct {
	// contig name, eg "NODE_1"
	Name string

	// assembled length in bp
	Length int

	// per-contig read depth
	Coverage float64
}

// ContigHit pairs a hit with the decoded identity of its query contig.
type ContigHit struct {
	Hit

	Contig ContigIdentity
}

// DecodeContig splits a query sequence id into its contig name, assembled
// length and coverage. The id must split into exactly two parts at
// "_length_" and again at "_cov_"; anything else is a decode error.
func DecodeContig(qseqid string) (c ContigIdentity, err error) {
	lengthSplit := strings.Split(qseqid, "_length_")
	if len(lengthSplit) != 2 {
		return c, fmt.Errorf("failed to decode contig id %q: expected one \"_length_\" delimiter", qseqid)
	}

	covSplit := strings.Split(lengthSplit[1], "_cov_")
	if len(covSplit) != 2 {
		return c, fmt.Errorf("failed to decode contig id %q: expected one \"_cov_\" delimiter", qseqid)
	}

	c.Name = lengthSplit[0]
	if c.Length, err = strconv.Atoi(covSplit[0]); err != nil {
		return c, fmt.Errorf("failed to decode contig id %q: bad length %q", qseqid, covSplit[0])
	}
	if c.Coverage, err = strconv.ParseFloat(covSplit[1], 64); err != nil {
		return c, fmt.Errorf("failed to decode contig id %q: bad coverage %q", qseqid, covSplit[1])
	}

	return c, nil
}

// DecodeHits decodes the contig identity of every hit. A decode failure
// is fatal for the caller: every path that reports contig names needs
// the decode to succeed.
func DecodeHits(hits []Hit) (decoded []ContigHit, err error) {
	for _, hit := range hits {
		contig, err := DecodeContig(hit.QSeqID)
		if err != nil {
			return nil, err
		}
		decoded = append(decoded, ContigHit{Hit: hit, Contig: contig})
	}

	return decoded, nil
}

// Filter keeps the hits whose contig passes the quality thresholds and
// counts the distinct contigs remaining. When no contig remains, the
// passing slice is empty and the returned error is ErrNoContigs.
func Filter(hits []ContigHit, minLength int, minCoverage float64) (passing []ContigHit, contigCount int, err error) {
	contigs := make(map[string]bool)
	for _, hit := range hits {
		if hit.QLen <= minLength || hit.Contig.Coverage <= minCoverage {
			continue
		}

		passing = append(passing, hit)
		contigs[hit.Contig.Name] = true
	}

	if len(contigs) == 0 {
		return nil, 0, ErrNoContigs
	}

	return passing, len(contigs), nil
}
