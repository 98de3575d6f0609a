// Package report persists evaluation results and renders them for humans:
// results.json under a per-run output directory, plus an HTML report.
package report

import (
	"time"

	"chemgrade/internal/scoring"
)

// Results is the complete persisted record of one grading run.
type Results struct {
	RunID      string         `json:"run_id"`
	Rubric     string         `json:"rubric"`
	Root       string         `json:"root"`
	StartedAt  time.Time      `json:"started_at"`
	FinishedAt time.Time      `json:"finished_at"`
	Structures []StructureRow `json:"structures"`
	Scores     scoring.Report `json:"scores"`
}

// StructureRow records which folder represented a structure key in the run.
type StructureRow struct {
	Key    string `json:"key"`
	Folder string `json:"folder"`
}
