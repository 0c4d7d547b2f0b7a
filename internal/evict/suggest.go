package evict

// Sentinel values written to the genotype column when no label can be
// suggested. The wording matches the lab's established report language.
const (
	// SuggestionManual asks for manual assessment of the sample.
	SuggestionManual = "Var god bedöm manuellt."

	// SuggestionNoContig marks a sample without a single contig passing
	// the length and coverage thresholds.
	SuggestionNoContig = "Ingen giltig contig (för kort/låg täckning)"

	// SuggestionDisabled is reported when the caller opted out of
	// automatic suggestion.
	SuggestionDisabled = "Genotypförslag inaktiverat."
)

// Thresholds are the criteria a genotype label has to clear before it is
// auto-suggested.
type Thresholds struct {
	// minimum number of hits supporting the top label
	MinRows int

	// minimum max percent identity across the filtered hits
	MinIdentity float64

	// minimum max bit score across the filtered hits
	MinBitScore float64
}

// Suggest picks the genotype label of a sample from its quality-filtered
// hits, or the manual-review sentinel when the evidence is inconclusive.
//
// The label of the hit with the highest percent identity is suggested
// iff that same label holds the highest bit score, the highest median
// percent identity, the highest median bit score, enough supporting
// hits, and both maxima clear their thresholds. A failure to compute any
// of those (eg an empty table) downgrades to the manual sentinel rather
// than aborting the surrounding report.
func Suggest(hits []ContigHit, t Thresholds) string {
	if len(hits) == 0 {
		return SuggestionManual
	}

	// single pass for the row-level maxima. ties keep the first
	// occurrence in input order
	best := hits[0]
	bestBitScore := hits[0]
	for _, hit := range hits[1:] {
		if hit.PIdent > best.PIdent {
			best = hit
		}
		if hit.BitScore > bestBitScore.BitScore {
			bestBitScore = hit
		}
	}

	pidentMedians := labelMedians(hits, func(h Hit) float64 { return h.PIdent })
	bitscoreMedians := labelMedians(hits, func(h Hit) float64 { return h.BitScore })

	topMedianPIdent, ok := maxMedianLabel(pidentMedians)
	if !ok {
		return SuggestionManual
	}
	topMedianBitScore, ok := maxMedianLabel(bitscoreMedians)
	if !ok {
		return SuggestionManual
	}

	topLabelCount := 0
	for _, hit := range hits {
		if hit.SComName == best.SComName {
			topLabelCount++
		}
	}

	if best.SComName == bestBitScore.SComName &&
		topLabelCount >= t.MinRows &&
		best.PIdent >= t.MinIdentity &&
		bestBitScore.BitScore >= t.MinBitScore &&
		topMedianPIdent == best.SComName &&
		topMedianBitScore == best.SComName {
		return best.SComName
	}

	return SuggestionManual
}
