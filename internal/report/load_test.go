package report

import (
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"chemgrade/internal/scoring"
)

func sampleResults() Results {
	return Results{
		RunID:      "run-1",
		Rubric:     "ring-strain",
		Root:       "/data/benchmark",
		StartedAt:  time.Date(2026, 5, 4, 10, 0, 0, 0, time.UTC),
		FinishedAt: time.Date(2026, 5, 4, 10, 0, 3, 0, time.UTC),
		Structures: []StructureRow{
			{Key: "cyclo/6", Folder: "cyclohexane"},
			{Key: "methyl/5", Folder: "methylcyclopentane"},
		},
		Scores: scoring.Report{
			Rubric: "ring-strain",
			PerItem: []scoring.ItemScore{
				{Name: "cyclo/6/scf_converged", Section: "inputs-qc", Awarded: 0.5, Max: 0.5, Status: scoring.StatusFull},
				{Name: "strain_dH/5", Section: "strain-numeric", Awarded: 2, Max: 4, Status: scoring.StatusPartial},
			},
			SectionTotals: []scoring.SectionTotal{
				{Name: "inputs-qc", Awarded: 0.5, Max: 44},
				{Name: "strain-numeric", Awarded: 2, Max: 48},
			},
			GrandTotal: scoring.Total{Awarded: 2.5, Max: 100},
		},
	}
}

// TestWriteAndLoadResults verifies the results.json round trip through the
// run directory layout.
func TestWriteAndLoadResults(t *testing.T) {
	root := t.TempDir()
	results := sampleResults()

	paths, err := WriteRunOutputs(results, root)
	if err != nil {
		t.Fatalf("write outputs: %v", err)
	}
	loaded, err := LoadResults(paths.ResultsPath())
	if err != nil {
		t.Fatalf("load results: %v", err)
	}
	if diff := cmp.Diff(results, loaded); diff != "" {
		t.Fatalf("results changed across the round trip (-want +got):\n%s", diff)
	}
}

// TestWriteRunOutputsRequiresIdentity verifies empty metadata is rejected.
func TestWriteRunOutputsRequiresIdentity(t *testing.T) {
	if _, err := WriteRunOutputs(Results{}, t.TempDir()); err == nil {
		t.Fatalf("expected an error for a missing run ID")
	}
	if _, err := WriteRunOutputs(sampleResults(), ""); err == nil {
		t.Fatalf("expected an error for a missing output dir")
	}
}

// TestRenderHTMLIncludesScores verifies the rendered report names the run,
// every section, and every item.
func TestRenderHTMLIncludesScores(t *testing.T) {
	html, err := RenderHTML(sampleResults())
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	for _, token := range []string{
		"run-1", "ring-strain",
		"inputs-qc", "strain-numeric",
		"cyclo/6/scf_converged", "strain_dH/5",
		"cyclohexane", "methylcyclopentane",
		"2.50", "100.00",
		"<table",
	} {
		if !strings.Contains(html, token) {
			t.Fatalf("expected report to include %q", token)
		}
	}
}

// TestRenderHTMLEscapesContent verifies untrusted folder names cannot inject
// markup.
func TestRenderHTMLEscapesContent(t *testing.T) {
	results := sampleResults()
	results.Structures = append(results.Structures, StructureRow{
		Key:    "name/<script>",
		Folder: "<script>alert(1)</script>",
	})
	html, err := RenderHTML(results)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if strings.Contains(html, "<script>") {
		t.Fatalf("expected folder names to be escaped")
	}
}

// TestLoadResultsMissingFile verifies the error path.
func TestLoadResultsMissingFile(t *testing.T) {
	if _, err := LoadResults(t.TempDir() + "/absent.json"); err == nil {
		t.Fatalf("expected an error for a missing file")
	}
}
