package evict

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/shenwei356/bio/seq"
	"github.com/shenwei356/bio/seqio/fastx"
	"github.com/shenwei356/xopen"
)

// fastaLineWidth is the fixed wrap width of sequence lines on output.
const fastaLineWidth = 80

// reverseSuffix is appended to the id of every reverse-complemented record.
const reverseSuffix = "_reverse_complement"

// complement maps each nucleotide to its complement, case preserved.
// N/n and anything unrecognized pass through unchanged.
var complement [256]byte

func init() {
	for i := 0; i < 256; i++ {
		complement[i] = byte(i)
	}
	complement['A'], complement['T'] = 'T', 'A'
	complement['C'], complement['G'] = 'G', 'C'
	complement['a'], complement['t'] = 't', 'a'
	complement['c'], complement['g'] = 'g', 'c'
}

// reverseComplement returns the reverse complement of a nucleotide
// sequence as a new slice.
func reverseComplement(s []byte) []byte {
	rc := make([]byte, len(s))
	for i, b := range s {
		rc[len(s)-i-1] = complement[b]
	}

	return rc
}

// ReverseContigs collects the query ids of all hits aligned on the
// reverse strand, ie with a subject start greater than the subject end.
// Rows whose coordinates fail to parse are skipped, not an error: the
// orientation pass only needs start/end and tolerates everything else.
func ReverseContigs(blastPath string) (map[string]bool, error) {
	fh, err := xopen.Ropen(blastPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open BLAST table %s: %v", blastPath, err)
	}
	defer fh.Close()

	cr := csv.NewReader(fh)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err == io.EOF {
		return map[string]bool{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read BLAST table %s: %v", blastPath, err)
	}

	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[name] = i
	}
	qseqid, okQ := cols["qseqid"]
	sstart, okS := cols["sstart"]
	send, okE := cols["send"]
	if !okQ || !okS || !okE {
		return nil, fmt.Errorf("BLAST table %s is missing qseqid/sstart/send columns", blastPath)
	}

	reverse := make(map[string]bool)
	for {
		fields, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read BLAST table %s: %v", blastPath, err)
		}
		if len(fields) <= qseqid || len(fields) <= sstart || len(fields) <= send {
			continue
		}

		start, err := strconv.Atoi(fields[sstart])
		if err != nil {
			continue
		}
		end, err := strconv.Atoi(fields[send])
		if err != nil {
			continue
		}

		if start > end {
			reverse[fields[qseqid]] = true
		}
	}

	return reverse, nil
}

// ReadFastaHeaders collects the header lines of a FASTA file, ">"
// included, in record order.
func ReadFastaHeaders(fastaPath string) (headers []string, err error) {
	seq.ValidateSeq = false

	reader, err := fastx.NewReader(seq.Unlimit, fastaPath, fastx.DefaultIDRegexp)
	if err != nil {
		return nil, fmt.Errorf("failed to open FASTA %s: %v", fastaPath, err)
	}
	defer reader.Close()

	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read FASTA %s: %v", fastaPath, err)
		}

		headers = append(headers, ">"+string(record.Name))
	}

	return headers, nil
}

// Orient streams the FASTA records of fastaIn to fastaOut, reverse
// complementing and relabelling every record whose id is in the reverse
// set. Sequence lines are rewrapped to 80 columns regardless of the
// input wrapping and records keep their input order.
func Orient(fastaIn, fastaOut string, reverse map[string]bool) error {
	seq.ValidateSeq = false

	reader, err := fastx.NewReader(seq.Unlimit, fastaIn, fastx.DefaultIDRegexp)
	if err != nil {
		return fmt.Errorf("failed to open FASTA %s: %v", fastaIn, err)
	}
	defer reader.Close()

	out, err := xopen.Wopen(fastaOut)
	if err != nil {
		return fmt.Errorf("failed to create FASTA %s: %v", fastaOut, err)
	}
	defer out.Close()

	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("failed to read FASTA %s: %v", fastaIn, err)
		}

		if reverse[string(record.ID)] {
			record.Seq.Seq = reverseComplement(record.Seq.Seq)
			record.Name = append(append([]byte{}, record.ID...), reverseSuffix...)
		}

		record.FormatToWriter(out, fastaLineWidth)
	}

	return nil
}
