package confirm

import (
	"fmt"
	"time"
)

// Status of a confirmation session.
type Status int

const (
	// StatusIdle is the initial state and the target of every reset.
	StatusIdle Status = iota
	// StatusDragging is a live session: a gesture is in progress.
	StatusDragging
	// StatusSuccess is entered when the completion policy is satisfied.
	// It holds until the auto-reset delay elapses.
	StatusSuccess
)

func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusDragging:
		return "dragging"
	case StatusSuccess:
		return "success"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// Snapshot is the render-facing view of a machine at one instant. The
// rendering layer subscribes to snapshots instead of reaching into the
// machine, so the core stays free of UI framework imports.
type Snapshot struct {
	Status   Status
	Progress float64
	// Remaining is meaningful only while dragging on a timed difficulty.
	Remaining time.Duration
	// Zone is meaningful only for the hard difficulty.
	Zone Zone
}
