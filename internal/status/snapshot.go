// internal/status/snapshot.go
package status

import "time"

// Snapshot is the poll health after one cycle.
// It contains no logic and no memory of the past beyond current state.
type Snapshot struct {
	Health         uint16
	LastError      string
	SecondsInError uint16
	Failures       uint32 // consecutive failed cycles
	Frames         uint64 // successful cycles since start
	LastFrameAt    time.Time
}
