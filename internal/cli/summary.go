package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"chemgrade/internal/scoring"
)

// renderScoreSummary formats the per-section totals and the grand total for
// plain console output.
func renderScoreSummary(scores scoring.Report, noColor bool) string {
	var lines []string
	header := fmt.Sprintf("%-20s %10s %10s", "Section", "Awarded", "Max")
	lines = append(lines, styleText(header, noColor, lipgloss.Color("33"), true))
	for _, section := range scores.SectionTotals {
		lines = append(lines, fmt.Sprintf("%-20s %10.2f %10.2f",
			section.Name, section.Awarded, section.Max))
	}
	total := fmt.Sprintf("%-20s %10.2f %10.2f", "TOTAL",
		scores.GrandTotal.Awarded, scores.GrandTotal.Max)
	lines = append(lines, styleText(total, noColor, lipgloss.Color("35"), true))
	return strings.Join(lines, "\n") + "\n"
}
