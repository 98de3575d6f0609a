package report

import (
	"context"
	"fmt"
	"html"
	"io"

	"github.com/a-h/templ"
)

// ReportPage builds the HTML report component for one grading run.
func ReportPage(results Results) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if err := writeHeader(w, results); err != nil {
			return err
		}
		if err := writeSummaryTable(w, results); err != nil {
			return err
		}
		if err := writeItemTable(w, results); err != nil {
			return err
		}
		if err := writeStructureTable(w, results); err != nil {
			return err
		}
		_, err := io.WriteString(w, "</body></html>\n")
		return err
	})
}

func writeHeader(w io.Writer, results Results) error {
	_, err := fmt.Fprintf(w,
		"<!doctype html>\n<html><head><meta charset=\"utf-8\"><title>chemgrade report</title></head><body>"+
			"<h1>Grading run %s</h1>"+
			"<p>Rubric %s over %s. Score %s of %s.</p>",
		html.EscapeString(results.RunID),
		html.EscapeString(results.Rubric),
		html.EscapeString(results.Root),
		formatPoints(results.Scores.GrandTotal.Awarded),
		formatPoints(results.Scores.GrandTotal.Max),
	)
	return err
}

func writeSummaryTable(w io.Writer, results Results) error {
	if _, err := io.WriteString(w, "<h2>Sections</h2><table><tr><th>Section</th><th>Awarded</th><th>Max</th></tr>"); err != nil {
		return err
	}
	for _, section := range results.Scores.SectionTotals {
		if _, err := fmt.Fprintf(w, "<tr><td>%s</td><td>%s</td><td>%s</td></tr>",
			html.EscapeString(section.Name),
			formatPoints(section.Awarded),
			formatPoints(section.Max),
		); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, "</table>")
	return err
}

func writeItemTable(w io.Writer, results Results) error {
	if _, err := io.WriteString(w, "<h2>Items</h2><table><tr><th>Item</th><th>Section</th><th>Awarded</th><th>Max</th><th>Status</th></tr>"); err != nil {
		return err
	}
	for _, item := range results.Scores.PerItem {
		if _, err := fmt.Fprintf(w, "<tr><td>%s</td><td>%s</td><td>%s</td><td>%s</td><td>%s</td></tr>",
			html.EscapeString(item.Name),
			html.EscapeString(item.Section),
			formatPoints(item.Awarded),
			formatPoints(item.Max),
			html.EscapeString(string(item.Status)),
		); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, "</table>")
	return err
}

func writeStructureTable(w io.Writer, results Results) error {
	if len(results.Structures) == 0 {
		return nil
	}
	if _, err := io.WriteString(w, "<h2>Structures</h2><table><tr><th>Key</th><th>Folder</th></tr>"); err != nil {
		return err
	}
	for _, row := range results.Structures {
		if _, err := fmt.Fprintf(w, "<tr><td>%s</td><td>%s</td></tr>",
			html.EscapeString(row.Key),
			html.EscapeString(row.Folder),
		); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, "</table>")
	return err
}
