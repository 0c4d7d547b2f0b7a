package evict

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// instrumentPlatform is the platform column of every samplesheet row.
// The lab only sequences on Illumina machines.
const instrumentPlatform = "ILLUMINA"

// SampleRow is one row of a taxprofiler samplesheet.
type SampleRow struct {
	Sample             string
	RunAccession       string
	InstrumentPlatform string
	Fastq1             string
	Fastq2             string
	Fasta              string
}

// BuildSamplesheet scans a run directory for sample subdirectories and
// returns one row per subdirectory holding at least one .fastq.gz file.
// Paired files are assigned in lexicographic order; a lone file leaves
// fastq_2 empty.
func BuildSamplesheet(dir string) (rows []SampleRow, err error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read run directory %s: %v", dir, err)
	}

	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		sampleDir := filepath.Join(dir, entry.Name())
		files, err := os.ReadDir(sampleDir)
		if err != nil {
			return nil, fmt.Errorf("failed to read sample directory %s: %v", sampleDir, err)
		}

		var fastqs []string
		for _, f := range files {
			if !f.IsDir() && strings.HasSuffix(f.Name(), ".fastq.gz") {
				fastqs = append(fastqs, f.Name())
			}
		}
		if len(fastqs) == 0 {
			continue
		}
		sort.Strings(fastqs)

		row := SampleRow{
			Sample:             entry.Name(),
			RunAccession:       entry.Name(),
			InstrumentPlatform: instrumentPlatform,
			Fastq1:             filepath.Join(dir, entry.Name(), fastqs[0]),
		}
		if len(fastqs) == 2 {
			row.Fastq2 = filepath.Join(dir, entry.Name(), fastqs[1])
		}

		rows = append(rows, row)
	}

	return rows, nil
}

// WriteSamplesheet builds the samplesheet of a run directory and writes
// it to <dir>/<base>_samplesheet.csv, returning the written path.
func WriteSamplesheet(dir string) (string, error) {
	rows, err := BuildSamplesheet(dir)
	if err != nil {
		return "", err
	}

	path := filepath.Join(dir, filepath.Base(dir)+"_samplesheet.csv")
	out, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create samplesheet %s: %v", path, err)
	}
	defer out.Close()

	w := csv.NewWriter(out)
	if err := w.Write([]string{"sample", "run_accession", "instrument_platform", "fastq_1", "fastq_2", "fasta"}); err != nil {
		return "", err
	}
	for _, row := range rows {
		if err := w.Write([]string{
			row.Sample, row.RunAccession, row.InstrumentPlatform,
			row.Fastq1, row.Fastq2, row.Fasta,
		}); err != nil {
			return "", err
		}
	}

	w.Flush()
	return path, w.Error()
}
