package evict

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

// makeRunDir lays out a fake sequencing run directory.
func makeRunDir(t *testing.T) string {
	t.Helper()
	dir := filepath.Join(t.TempDir(), "run_42")

	files := map[string][]string{
		"sample_01": {"sample_01_R1.fastq.gz", "sample_01_R2.fastq.gz"},
		"sample_02": {"sample_02_R1.fastq.gz"},
		"empty":     {},
		"notes":     {"readme.txt"},
	}
	for sample, names := range files {
		if err := os.MkdirAll(filepath.Join(dir, sample), 0755); err != nil {
			t.Fatal(err)
		}
		for _, name := range names {
			if err := os.WriteFile(filepath.Join(dir, sample, name), nil, 0644); err != nil {
				t.Fatal(err)
			}
		}
	}

	// a stray file at the top level is not a sample
	if err := os.WriteFile(filepath.Join(dir, "run.log"), nil, 0644); err != nil {
		t.Fatal(err)
	}

	return dir
}

func TestBuildSamplesheet(t *testing.T) {
	dir := makeRunDir(t)

	rows, err := BuildSamplesheet(dir)
	if err != nil {
		t.Fatalf("BuildSamplesheet() error = %v", err)
	}

	want := []SampleRow{
		{
			Sample:             "sample_01",
			RunAccession:       "sample_01",
			InstrumentPlatform: "ILLUMINA",
			Fastq1:             filepath.Join(dir, "sample_01", "sample_01_R1.fastq.gz"),
			Fastq2:             filepath.Join(dir, "sample_01", "sample_01_R2.fastq.gz"),
		},
		{
			Sample:             "sample_02",
			RunAccession:       "sample_02",
			InstrumentPlatform: "ILLUMINA",
			Fastq1:             filepath.Join(dir, "sample_02", "sample_02_R1.fastq.gz"),
		},
	}
	if !reflect.DeepEqual(rows, want) {
		t.Errorf("BuildSamplesheet() = %+v, want %+v", rows, want)
	}
}

func TestWriteSamplesheet(t *testing.T) {
	dir := makeRunDir(t)

	path, err := WriteSamplesheet(dir)
	if err != nil {
		t.Fatalf("WriteSamplesheet() error = %v", err)
	}

	if filepath.Base(path) != "run_42_samplesheet.csv" {
		t.Errorf("WriteSamplesheet() path = %q", path)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read samplesheet: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(string(content)), "\n")
	if len(lines) != 3 {
		t.Fatalf("samplesheet has %d lines, want header plus 2 rows: %q", len(lines), lines)
	}
	if lines[0] != "sample,run_accession,instrument_platform,fastq_1,fastq_2,fasta" {
		t.Errorf("samplesheet header = %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "sample_01,sample_01,ILLUMINA,") {
		t.Errorf("samplesheet row = %q", lines[1])
	}
}
