// Package extract parses quantum-chemistry job text into the scalar values
// and booleans the grader consumes. Values that cannot be found are nil;
// the grader distinguishes "wrong" from "unmeasurable" downstream, so this
// package never substitutes defaults.
package extract

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	reNumber        = regexp.MustCompile(`[-+]?\d*\.\d+|[-+]?\d+`)
	reFreqBlock     = regexp.MustCompile(`(?i)VIBRATIONAL\s+FREQUENCIES`)
	reFreqValue     = regexp.MustCompile(`([+-]?\d+\.\d+)\s*cm(?:\*\*-?1|-1)`)
	reSCFConverged  = regexp.MustCompile(`(?i)SCF converged`)
	reGeomConverged = regexp.MustCompile(`(?is)\*+\s*HURRAY\s*\*+.*OPTIMIZATION HAS CONVERGED`)
)

const (
	enthalpyMarker = "Total Enthalpy"
	gibbsMarker    = "Final Gibbs free energy"
)

// freqScanWindow limits how far past the frequency header values are read,
// so tails of unrelated tables are not misparsed as frequencies.
const freqScanWindow = 400

// Output holds everything parsed from one job output file.
type Output struct {
	EnthalpyAU    *float64
	GibbsAU       *float64
	SCFConverged  bool
	GeomConverged bool
	Frequencies   []float64
}

// ParseOutput scans job output text for thermochemistry, convergence
// banners, and the vibrational frequency block.
func ParseOutput(text string) Output {
	return Output{
		EnthalpyAU:    firstNumberAfter(text, enthalpyMarker),
		GibbsAU:       firstNumberAfter(text, gibbsMarker),
		SCFConverged:  reSCFConverged.MatchString(text),
		GeomConverged: reGeomConverged.MatchString(text),
		Frequencies:   parseFrequencies(text),
	}
}

// ImaginaryFrequency reports whether any vibrational mode is negative.
// Nil means no frequency block was found, which is not the same as a clean
// spectrum.
func (o Output) ImaginaryFrequency() *bool {
	if len(o.Frequencies) == 0 {
		return nil
	}
	imaginary := false
	for _, f := range o.Frequencies {
		if f < 0 {
			imaginary = true
			break
		}
	}
	return &imaginary
}

// firstNumberAfter returns the first numeric token on the first line
// containing marker, or nil.
func firstNumberAfter(text, marker string) *float64 {
	for _, line := range strings.Split(text, "\n") {
		if !strings.Contains(line, marker) {
			continue
		}
		token := reNumber.FindString(line)
		if token == "" {
			return nil
		}
		value, err := strconv.ParseFloat(token, 64)
		if err != nil {
			return nil
		}
		return &value
	}
	return nil
}

// parseFrequencies reads cm**-1 values from the frequency block, falling
// back to a whole-text scan when the block header is absent.
func parseFrequencies(text string) []float64 {
	lines := strings.Split(text, "\n")
	start := -1
	for i, line := range lines {
		if reFreqBlock.MatchString(line) {
			start = i
			break
		}
	}
	var scan string
	if start >= 0 {
		end := start + freqScanWindow
		if end > len(lines) {
			end = len(lines)
		}
		scan = strings.Join(lines[start:end], "\n")
	}
	values := matchFrequencies(scan)
	if len(values) == 0 {
		values = matchFrequencies(text)
	}
	return values
}

func matchFrequencies(text string) []float64 {
	if text == "" {
		return nil
	}
	matches := reFreqValue.FindAllStringSubmatch(text, -1)
	if len(matches) == 0 {
		return nil
	}
	values := make([]float64, 0, len(matches))
	for _, m := range matches {
		value, err := strconv.ParseFloat(m[1], 64)
		if err != nil {
			continue
		}
		values = append(values, value)
	}
	return values
}
