package evict

import (
	"fmt"
	"html/template"
	"io"
	"os"
	"path/filepath"
	"sort"
	"time"
)

// lowIdentityWarning is shown when even the best hit is a weak match.
const lowIdentityWarning = "OBS! Högsta identitet har ett lågt värde (identitet < 99%) - fördjupad utredning nödvändig."

// LabelStat is one genotype row of the report tables.
type LabelStat struct {
	Label          string
	Hits           int
	MedianPIdent   float64
	MedianBitScore float64
}

// ContigStat is one contig row of the report tables.
type ContigStat struct {
	Contig         string
	Hits           int
	MedianCoverage float64
	MedianQLen     float64
}

// ReportData is everything the HTML report template consumes.
type ReportData struct {
	Sample string
	Ticket string
	Date   string

	// Fallback is true when the quality filter left nothing and the
	// report was rendered from the unfiltered hit table instead.
	Fallback bool

	Warning    string
	Suggestion string

	ContigCount   int
	GenotypeCount int

	GenotypeStats []LabelStat
	ContigStats   []ContigStat

	// headers of the sample's contig FASTA, when one was provided
	ContigHeaders []string
}

// BuildReport computes the data of a normal (quality-filtered) report.
// It fails on a missing input, an undecodable query id, a missing contig
// FASTA or an empty filtered set; the caller falls back to
// BuildFallbackReport on any of those.
func BuildReport(blastPath, fastaPath string, t Thresholds, minLength int, minCoverage float64) (ReportData, error) {
	hits, err := ReadHits(blastPath)
	if err != nil {
		return ReportData{}, err
	}

	decoded, err := DecodeHits(hits)
	if err != nil {
		return ReportData{}, err
	}

	passing, contigCount, err := Filter(decoded, minLength, minCoverage)
	if err != nil {
		return ReportData{}, err
	}

	data := buildReportData(passing)
	data.ContigCount = contigCount
	data.Suggestion = Suggest(passing, t)

	maxPIdent := passing[0].PIdent
	for _, hit := range passing {
		if hit.PIdent > maxPIdent {
			maxPIdent = hit.PIdent
		}
	}
	if maxPIdent < 99 {
		data.Warning = lowIdentityWarning
	}

	if fastaPath != "" {
		if data.ContigHeaders, err = ReadFastaHeaders(fastaPath); err != nil {
			return ReportData{}, err
		}
	}

	return data, nil
}

// BuildFallbackReport computes report data from the unfiltered hit
// table. It is deliberately lenient: undecodable query ids are skipped
// and a missing contig FASTA only leaves the header section empty.
func BuildFallbackReport(blastPath, fastaPath string) (ReportData, error) {
	hits, err := ReadHits(blastPath)
	if err != nil {
		return ReportData{}, err
	}

	var decoded []ContigHit
	for _, hit := range hits {
		contig, err := DecodeContig(hit.QSeqID)
		if err != nil {
			continue
		}
		decoded = append(decoded, ContigHit{Hit: hit, Contig: contig})
	}

	data := buildReportData(decoded)
	data.Fallback = true
	data.Suggestion = SuggestionManual

	contigs := make(map[string]bool)
	for _, hit := range decoded {
		contigs[hit.Contig.Name] = true
	}
	data.ContigCount = len(contigs)

	if fastaPath != "" {
		if headers, err := ReadFastaHeaders(fastaPath); err == nil {
			data.ContigHeaders = headers
		}
	}

	return data, nil
}

// buildReportData aggregates the per-genotype and per-contig statistics
// tables, each sorted by its leading median ascending.
func buildReportData(hits []ContigHit) ReportData {
	data := ReportData{Date: time.Now().Format("2006-01-02")}

	pidentMedians := labelMedians(hits, func(h Hit) float64 { return h.PIdent })
	bitscoreMedians := labelMedians(hits, func(h Hit) float64 { return h.BitScore })
	labelCounts := make(map[string]int)
	for _, hit := range hits {
		labelCounts[hit.SComName]++
	}

	for label := range pidentMedians {
		data.GenotypeStats = append(data.GenotypeStats, LabelStat{
			Label:          label,
			Hits:           labelCounts[label],
			MedianPIdent:   pidentMedians[label],
			MedianBitScore: bitscoreMedians[label],
		})
	}
	sort.Slice(data.GenotypeStats, func(i, j int) bool {
		if data.GenotypeStats[i].MedianPIdent != data.GenotypeStats[j].MedianPIdent {
			return data.GenotypeStats[i].MedianPIdent < data.GenotypeStats[j].MedianPIdent
		}
		return data.GenotypeStats[i].Label < data.GenotypeStats[j].Label
	})
	data.GenotypeCount = len(data.GenotypeStats)

	coverageMedians := contigMedians(hits, func(h ContigHit) float64 { return h.Contig.Coverage })
	qlenMedians := contigMedians(hits, func(h ContigHit) float64 { return float64(h.QLen) })
	contigCounts := make(map[string]int)
	for _, hit := range hits {
		contigCounts[hit.Contig.Name]++
	}

	for contig := range coverageMedians {
		data.ContigStats = append(data.ContigStats, ContigStat{
			Contig:         contig,
			Hits:           contigCounts[contig],
			MedianCoverage: coverageMedians[contig],
			MedianQLen:     qlenMedians[contig],
		})
	}
	sort.Slice(data.ContigStats, func(i, j int) bool {
		if data.ContigStats[i].MedianCoverage != data.ContigStats[j].MedianCoverage {
			return data.ContigStats[i].MedianCoverage < data.ContigStats[j].MedianCoverage
		}
		return data.ContigStats[i].Contig < data.ContigStats[j].Contig
	})

	return data
}

// reportTemplate is the unified template for normal and fallback reports.
var reportTemplate = template.Must(template.New("report").Parse(`<!DOCTYPE html>
<html lang="sv">
<head>
<meta charset="UTF-8">
<title>Enterovirus Rapport - {{.Sample}}</title>
</head>
<body>
<h1>Enterovirus Rapport</h1>
<p>Prov: {{.Sample}} | Ärende: {{.Ticket}} | Datum: {{.Date}}</p>
{{if .Fallback}}<p class="warning">&#9888; Inga contigs klarade filtreringen (&ge;200bp, &ge;50x) - rapporten visar ofiltrerade resultat.</p>{{end}}
{{if .Warning}}<p class="warning">&#9888; {{.Warning}}</p>{{end}}
<h2>Genotypförslag</h2>
<p>{{.Suggestion}}</p>
<h2>Genotyper ({{.GenotypeCount}})</h2>
<table border="1">
<tr><th>Genotyp</th><th>Träffar</th><th>Median identitet (%)</th><th>Median bit score</th></tr>
{{range .GenotypeStats}}<tr><td>{{.Label}}</td><td>{{.Hits}}</td><td>{{printf "%.2f" .MedianPIdent}}</td><td>{{printf "%.1f" .MedianBitScore}}</td></tr>
{{end}}</table>
<h2>Contigs ({{.ContigCount}})</h2>
<table border="1">
<tr><th>Contig</th><th>Träffar</th><th>Median täckning (x)</th><th>Median längd (bp)</th></tr>
{{range .ContigStats}}<tr><td>{{.Contig}}</td><td>{{.Hits}}</td><td>{{printf "%.1f" .MedianCoverage}}</td><td>{{printf "%.0f" .MedianQLen}}</td></tr>
{{end}}</table>
{{if .ContigHeaders}}<h2>Contig-sekvenser</h2>
<p>{{range .ContigHeaders}}{{.}}<br>{{end}}</p>
{{end}}</body>
</html>
`))

// RenderReport writes the HTML report for data to w.
func RenderReport(w io.Writer, data ReportData) error {
	return reportTemplate.Execute(w, data)
}

// WriteReport renders the report to
// <outputDir>/<ticket>/report/<sample>.html, creating directories as
// needed, and returns the written path.
func WriteReport(outputDir, ticket string, data ReportData) (string, error) {
	reportDir := filepath.Join(outputDir, ticket, "report")
	if err := os.MkdirAll(reportDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create report directory %s: %v", reportDir, err)
	}

	path := filepath.Join(reportDir, data.Sample+".html")
	out, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create report %s: %v", path, err)
	}
	defer out.Close()

	if err := RenderReport(out, data); err != nil {
		return "", fmt.Errorf("failed to render report %s: %v", path, err)
	}

	return path, nil
}
