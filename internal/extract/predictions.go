package extract

import (
	"regexp"
	"strconv"
	"strings"
)

// The deterministic report extractor only trusts well-formed markdown table
// rows in a kcal/mol context. Anything it cannot match stays absent; an
// LLM-backed fallback is a separate collaborator behind the same contract.

var (
	reStrainRow = regexp.MustCompile(`(?m)^\s*\|\s*(\d+)\s*\|\s*([+-]?\d+(?:\.\d+)?)\s*\|\s*([+-]?\d+(?:\.\d+)?)\s*\|\s*$`)
	reKcalUnit  = regexp.MustCompile(`(?i)kcal\s*/\s*mol`)
	reReference = regexp.MustCompile(`(?i)\b(cyclohexane)\b.*\b(reference\s+point|zero\s+strain\s+energy)\b`)
)

var unicodeNormalizer = strings.NewReplacer(
	"−", "-", // minus sign
	"‒", "-", // figure dash
	"–", "-", // en dash
	"—", "-", // em dash
	" ", " ", // nonbreaking space
)

// PredictedRow is one ring-size row claimed by the agent's report.
type PredictedRow struct {
	RingSize int
	StrainH  *float64
	StrainG  *float64
}

// Predictions is the deterministic parse of an agent report.
type Predictions struct {
	Rows               map[int]PredictedRow
	ReferenceIsSixRing bool
}

// ParseReport extracts predicted strain rows and the stated reference point
// from a markdown report. Total function: malformed markdown produces an
// empty row set, never an error.
func ParseReport(markdown string) Predictions {
	normalized := unicodeNormalizer.Replace(markdown)
	predictions := Predictions{
		Rows:               make(map[int]PredictedRow),
		ReferenceIsSixRing: reReference.MatchString(normalized),
	}
	// Require a kcal/mol mention somewhere so arbitrary three-column tables
	// are not mistaken for strain data.
	if !reKcalUnit.MatchString(normalized) {
		return predictions
	}
	for _, m := range reStrainRow.FindAllStringSubmatch(normalized, -1) {
		ringSize, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		row := PredictedRow{RingSize: ringSize}
		if v, err := strconv.ParseFloat(m[2], 64); err == nil {
			row.StrainH = &v
		}
		if v, err := strconv.ParseFloat(m[3], 64); err == nil {
			row.StrainG = &v
		}
		predictions.Rows[ringSize] = row
	}
	return predictions
}
