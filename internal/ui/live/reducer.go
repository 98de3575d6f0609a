package live

import "time"

// Reduce folds one event into the UI state. Pure function; the model owns
// the only mutable copy.
func Reduce(state State, event Event) State {
	switch event.Kind {
	case EventRunStart:
		state.RunID = event.RunID
		state.Root = event.Root
		if state.StartedAt.IsZero() {
			state.StartedAt = time.Now()
		}
	case EventPhase:
		state.Phase = event.Phase
	case EventStructure:
		state.Rows = upsertRow(state.Rows, StructureRow{
			Key:    event.Key,
			Folder: event.Folder,
			Status: event.Status,
		})
		state.Counts = recount(state.Rows)
	case EventRunEnd:
		state.Finished = true
		state.Awarded = event.Awarded
		state.Max = event.Max
	}
	return state
}

// upsertRow replaces the row with the same key or appends a new one,
// preserving arrival order.
func upsertRow(rows []StructureRow, row StructureRow) []StructureRow {
	out := make([]StructureRow, len(rows))
	copy(out, rows)
	for i := range out {
		if out[i].Key == row.Key {
			out[i] = row
			return out
		}
	}
	return append(out, row)
}

func recount(rows []StructureRow) StatusCounts {
	var counts StatusCounts
	for _, row := range rows {
		switch row.Status {
		case StatusSelected:
			counts.Selected++
		case StatusExtracted:
			counts.Extracted++
		case StatusIncomplete:
			counts.Incomplete++
		}
	}
	return counts
}
