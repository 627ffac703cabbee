// internal/poller/types.go
package poller

import (
	"image"
	"time"

	"github.com/tamzrod/touchhand/internal/frame"
	"github.com/tamzrod/touchhand/internal/status"
)

// State of the poll loop.
type State int

const (
	Running State = iota
	Stopped
)

func (s State) String() string {
	if s == Running {
		return "RUNNING"
	}
	return "STOPPED"
}

// Result is a snapshot produced by one poll cycle.
type Result struct {
	DeviceID string
	Seq      uint64
	At       time.Time

	// Raw is the 80-register block exactly as read.
	Raw   []uint16
	Grid  *frame.Grid
	Image *image.RGBA // one pixel per cell, not enlarged

	Status status.Snapshot
	Err    error // non-nil means the cycle was skipped
}

// OK reports whether the cycle produced a frame.
func (r Result) OK() bool {
	return r.Err == nil && r.Grid != nil
}
