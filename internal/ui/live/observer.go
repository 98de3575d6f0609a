// Package live renders a terminal progress view of a grading run: one table
// row per structure plus phase and score lines, driven by an event channel
// so the pipeline never blocks on the UI.
package live

import (
	"io"
	"os"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
)

// Controller runs the live UI and receives pipeline progress callbacks.
type Controller struct {
	events    chan Event
	program   *tea.Program
	done      chan struct{}
	closeOnce sync.Once
}

// Start launches a live UI controller writing to stdout.
func Start(stdout io.Writer, opts Options) *Controller {
	if stdout == nil {
		stdout = os.Stdout
	}
	events := make(chan Event, 256)
	model := NewModel(events, opts)
	program := tea.NewProgram(model, tea.WithOutput(stdout), tea.WithAltScreen())
	controller := &Controller{
		events:  events,
		program: program,
		done:    make(chan struct{}),
	}
	go func() {
		_, _ = program.Run()
		close(controller.done)
	}()
	return controller
}

// Close signals the UI to stop.
func (c *Controller) Close() {
	if c == nil {
		return
	}
	c.closeOnce.Do(func() {
		close(c.events)
	})
}

// Wait blocks until the UI has exited.
func (c *Controller) Wait() {
	if c == nil {
		return
	}
	<-c.done
}

// OnRunStart forwards run start to the UI.
func (c *Controller) OnRunStart(runID, root string) {
	c.send(Event{Kind: EventRunStart, RunID: runID, Root: root})
}

// OnPhase forwards a pipeline phase change to the UI.
func (c *Controller) OnPhase(phase string) {
	c.send(Event{Kind: EventPhase, Phase: phase})
}

// OnStructure forwards a structure status update to the UI.
func (c *Controller) OnStructure(key, folder, status string) {
	c.send(Event{Kind: EventStructure, Key: key, Folder: folder, Status: status})
}

// OnRunEnd forwards the final score to the UI and closes it.
func (c *Controller) OnRunEnd(awarded, max float64) {
	c.send(Event{Kind: EventRunEnd, Awarded: awarded, Max: max})
	c.Close()
}

// send enqueues an event without blocking the caller.
func (c *Controller) send(event Event) {
	if c == nil {
		return
	}
	select {
	case c.events <- event:
	default:
	}
}
