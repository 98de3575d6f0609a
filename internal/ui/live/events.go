package live

// EventKind identifies the type of live UI event.
type EventKind int

const (
	// EventRunStart signals the start of a grading run.
	EventRunStart EventKind = iota
	// EventPhase signals a pipeline phase change.
	EventPhase
	// EventStructure delivers a structure status update.
	EventStructure
	// EventRunEnd signals run completion with the final score.
	EventRunEnd
)

// Structure statuses shown in the live table.
const (
	StatusSelected   = "selected"
	StatusExtracted  = "extracted"
	StatusIncomplete = "incomplete"
)

// Event carries a UI update payload.
type Event struct {
	Kind    EventKind
	RunID   string
	Root    string
	Phase   string
	Key     string
	Folder  string
	Status  string
	Awarded float64
	Max     float64
}
