package live

import "time"

// StructureRow holds UI state for a single structure.
type StructureRow struct {
	Key    string
	Folder string
	Status string
}

// StatusCounts aggregates structure counts by status bucket.
type StatusCounts struct {
	Selected   int
	Extracted  int
	Incomplete int
}

// State captures the live UI state for a grading run.
type State struct {
	RunID     string
	Root      string
	Phase     string
	StartedAt time.Time
	Rows      []StructureRow
	Counts    StatusCounts
	Finished  bool
	Awarded   float64
	Max       float64
}
