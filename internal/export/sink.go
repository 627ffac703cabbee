// internal/export/sink.go
package export

import (
	"context"

	"github.com/tamzrod/touchhand/internal/config"
	"github.com/tamzrod/touchhand/internal/poller"
)

// SnapshotSink writes the latest frame to Path every Every successful cycles.
type SnapshotSink struct {
	Path  string
	Scale int
	Every int

	seen int
}

// NewSnapshotSink maps the snapshot block.
func NewSnapshotSink(cfg config.SnapshotConfig) *SnapshotSink {
	return &SnapshotSink{Path: cfg.Path, Scale: cfg.Scale, Every: cfg.Every}
}

// Show implements poller.Sink. Failed cycles are ignored.
func (s *SnapshotSink) Show(_ context.Context, res poller.Result) error {
	if !res.OK() {
		return nil
	}
	s.seen++
	every := s.Every
	if every < 1 {
		every = 1
	}
	if (s.seen-1)%every != 0 {
		return nil
	}
	return SavePNG(s.Path, res.Image, s.Scale)
}
