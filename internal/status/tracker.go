// internal/status/tracker.go
package status

import "time"

// Tracker owns the running Snapshot. Observe is called once per poll
// cycle by the loop that owns the transport; it is not synchronized.
type Tracker struct {
	snap       Snapshot
	errorSince time.Time
}

// NewTracker starts in HealthUnknown.
func NewTracker() *Tracker {
	return &Tracker{snap: Snapshot{Health: HealthUnknown}}
}

// Observe folds one cycle outcome into the snapshot and returns a copy.
func (t *Tracker) Observe(err error, at time.Time) Snapshot {
	if err == nil {
		// Recovery / OK
		t.snap.Health = HealthOK
		t.snap.LastError = ""
		t.snap.SecondsInError = 0
		t.snap.Failures = 0
		t.snap.Frames++
		t.snap.LastFrameAt = at
		t.errorSince = time.Time{}
		return t.snap
	}

	if t.snap.Health != HealthError {
		t.errorSince = at
	}
	t.snap.Health = HealthError
	t.snap.LastError = err.Error()
	t.snap.Failures++

	// seconds_in_error MUST NOT wrap
	secs := at.Sub(t.errorSince) / time.Second
	if secs > MaxSecondsInError {
		secs = MaxSecondsInError
	}
	if secs < 0 {
		secs = 0
	}
	t.snap.SecondsInError = uint16(secs)
	return t.snap
}

// Snapshot returns the current state without observing anything.
func (t *Tracker) Snapshot() Snapshot {
	return t.snap
}
