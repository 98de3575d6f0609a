package extract

import (
	"regexp"
	"strings"
)

// Composite methods that imply a built-in basis set.
var compositeMethods = map[string]struct{}{
	"B97-3C":    {},
	"R2SCAN-3C": {},
	"PBEH-3C":   {},
	"HF-3C":     {},
}

var reTaskKeyword = regexp.MustCompile(`\b(OPT|FREQ|SP|MD|CIS|TDDFT)\b`)

var (
	reBangLine   = regexp.MustCompile(`(?m)^\s*!`)
	reBasisBlock = regexp.MustCompile(`(?im)^\s*%basis\b`)
	reInteger    = regexp.MustCompile(`^[+-]?\d+$`)
	reBasisName  = regexp.MustCompile(`(?i)(?:^|\s)(` +
		`sto-\d+g(?:\*\*|\*)?` +
		`|\d+-\d+g(?:\([\w,+\-]*\))?(?:\*\*|\*)?` +
		`|def2-\w+` +
		`|(?:aug-)?cc-pv\w+` +
		`|def-\w+` +
		`|zora-def2-\w+` +
		`)(?:\s|$)`)
)

// Input holds the presence checks extracted from one job input file.
type Input struct {
	MethodPresent     bool
	BasisPresent      bool
	TasksPresent      bool
	ChargeMultPresent bool
}

// ParseInput scans job input text for the presence checks the rubric grades.
func ParseInput(text string) Input {
	return Input{
		MethodPresent:     reBangLine.MatchString(text),
		BasisPresent:      basisPresent(text),
		TasksPresent:      tasksPresent(text),
		ChargeMultPresent: chargeMultPresent(text),
	}
}

// basisPresent accepts an explicit basis keyword on the method line, a
// %basis block anywhere, or a composite method that carries its own basis.
func basisPresent(text string) bool {
	methodLine := firstBangLine(text)
	if methodLine != "" && reBasisName.MatchString(methodLine) {
		return true
	}
	if reBasisBlock.MatchString(text) {
		return true
	}
	if methodLine != "" {
		for _, token := range strings.Fields(methodLine[1:]) {
			if _, ok := compositeMethods[strings.ToUpper(token)]; ok {
				return true
			}
		}
	}
	return false
}

func firstBangLine(text string) string {
	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "!") {
			return trimmed
		}
	}
	return ""
}

func tasksPresent(text string) bool {
	return reTaskKeyword.MatchString(strings.ToUpper(text))
}

// chargeMultPresent looks for a geometry line carrying integer charge and
// multiplicity, covering both inline geometry and xyzfile references.
func chargeMultPresent(text string) bool {
	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		if !strings.HasPrefix(trimmed, "*") {
			continue
		}
		parts := strings.Fields(trimmed)
		if len(parts) < 3 {
			continue
		}
		// Both "*xyz 0 1" and "* xyz 0 1" spellings occur; the coordinate
		// type token shifts the charge position when separated.
		chargeIdx := 1
		if strings.EqualFold(parts[1], "xyz") || strings.EqualFold(parts[1], "xyzfile") || strings.EqualFold(parts[1], "int") || strings.EqualFold(parts[1], "gzmt") {
			chargeIdx = 2
		}
		if len(parts) <= chargeIdx+1 {
			continue
		}
		if reInteger.MatchString(parts[chargeIdx]) && reInteger.MatchString(parts[chargeIdx+1]) {
			return true
		}
	}
	return false
}
