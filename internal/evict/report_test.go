package evict

import (
	"bytes"
	"errors"
	"os"
	"path"
	"path/filepath"
	"strings"
	"testing"
)

func TestBuildReport(t *testing.T) {
	data, err := BuildReport(path.Join("testdata", "sample.blast"), "", testThresholds, 200, 50)
	if err != nil {
		t.Fatalf("BuildReport() error = %v", err)
	}

	if data.Fallback {
		t.Error("BuildReport() flagged a passing sample as fallback")
	}
	if data.Suggestion != "Coxsackievirus B5" {
		t.Errorf("BuildReport() suggestion = %q", data.Suggestion)
	}
	if data.ContigCount != 1 {
		t.Errorf("BuildReport() contig count = %d, want 1", data.ContigCount)
	}
	if data.GenotypeCount != 2 {
		t.Errorf("BuildReport() genotype count = %d, want 2", data.GenotypeCount)
	}

	// stats come out sorted by median ascending, so the dominant
	// genotype is last
	last := data.GenotypeStats[len(data.GenotypeStats)-1]
	if last.Label != "Coxsackievirus B5" || last.Hits != 25 {
		t.Errorf("BuildReport() top genotype = %+v", last)
	}

	// max identity in the fixture is 95 so the low identity warning fires
	if data.Warning == "" {
		t.Error("BuildReport() expected the low identity warning")
	}
}

func TestBuildReport_noContigs(t *testing.T) {
	_, err := BuildReport(path.Join("testdata", "lowqual.blast"), "", testThresholds, 200, 50)
	if !errors.Is(err, ErrNoContigs) {
		t.Errorf("BuildReport() error = %v, want ErrNoContigs", err)
	}
}

func TestBuildReport_missingFasta(t *testing.T) {
	_, err := BuildReport(path.Join("testdata", "sample.blast"), path.Join("testdata", "nope.fasta"), testThresholds, 200, 50)
	if err == nil {
		t.Error("BuildReport() expected an error for a missing contig FASTA")
	}
}

func TestBuildFallbackReport(t *testing.T) {
	data, err := BuildFallbackReport(path.Join("testdata", "lowqual.blast"), path.Join("testdata", "nope.fasta"))
	if err != nil {
		t.Fatalf("BuildFallbackReport() error = %v", err)
	}

	if !data.Fallback {
		t.Error("BuildFallbackReport() did not flag the data as fallback")
	}
	if data.Suggestion != SuggestionManual {
		t.Errorf("BuildFallbackReport() suggestion = %q", data.Suggestion)
	}
	// the three short contigs are all reported, unfiltered
	if data.ContigCount != 3 {
		t.Errorf("BuildFallbackReport() contig count = %d, want 3", data.ContigCount)
	}
	// the missing FASTA only leaves the header section empty
	if len(data.ContigHeaders) != 0 {
		t.Errorf("BuildFallbackReport() headers = %q, want none", data.ContigHeaders)
	}
}

func TestRenderReport(t *testing.T) {
	data, err := BuildReport(path.Join("testdata", "sample.blast"), path.Join("testdata", "orient.fasta"), testThresholds, 200, 50)
	if err != nil {
		t.Fatalf("BuildReport() error = %v", err)
	}
	data.Sample = "sample_01"
	data.Ticket = "1003460"

	var buf bytes.Buffer
	if err := RenderReport(&buf, data); err != nil {
		t.Fatalf("RenderReport() error = %v", err)
	}

	html := buf.String()
	for _, want := range []string{
		"sample_01",
		"1003460",
		"Coxsackievirus B5",
		"Echovirus E30",
		"fördjupad utredning nödvändig", // the low identity warning
		"ctg1_length_500_cov_80 enterovirus contig",
	} {
		if !strings.Contains(html, want) {
			t.Errorf("rendered report is missing %q", want)
		}
	}
}

func TestWriteReport(t *testing.T) {
	dir := t.TempDir()

	data, err := BuildFallbackReport(path.Join("testdata", "lowqual.blast"), "")
	if err != nil {
		t.Fatalf("BuildFallbackReport() error = %v", err)
	}
	data.Sample = "sample_02"
	data.Ticket = "1003460"

	written, err := WriteReport(dir, "1003460", data)
	if err != nil {
		t.Fatalf("WriteReport() error = %v", err)
	}

	want := filepath.Join(dir, "1003460", "report", "sample_02.html")
	if written != want {
		t.Errorf("WriteReport() path = %q, want %q", written, want)
	}

	content, err := os.ReadFile(written)
	if err != nil {
		t.Fatalf("failed to read report: %v", err)
	}
	if !strings.Contains(string(content), "ofiltrerade") {
		t.Error("fallback report is missing the unfiltered-results warning")
	}
}
