package report

import "fmt"

// formatPoints returns a fixed-precision point string for report output.
func formatPoints(points float64) string {
	return fmt.Sprintf("%.2f", points)
}
