package report

import (
	"context"
	"strings"
)

// RenderHTML renders the report component into a string.
func RenderHTML(results Results) (string, error) {
	var builder strings.Builder
	if err := ReportPage(results).Render(context.Background(), &builder); err != nil {
		return "", err
	}
	return builder.String(), nil
}
