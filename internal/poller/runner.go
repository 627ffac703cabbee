// internal/poller/runner.go
package poller

import (
	"context"
	"errors"
	"time"

	"github.com/tamzrod/touchhand/internal/monitoring"
)

var logf = monitoring.For("poller")

// ErrQuit is returned by a Sink to stop the loop normally.
var ErrQuit = errors.New("quit requested")

// Sink consumes poll results. Results with a non-nil Err carry no frame.
type Sink interface {
	Show(ctx context.Context, res Result) error
}

// SinkFunc adapts a function to Sink.
type SinkFunc func(ctx context.Context, res Result) error

func (f SinkFunc) Show(ctx context.Context, res Result) error {
	return f(ctx, res)
}

// Sinks fans one result out to every sink. All sinks see every result;
// their errors are joined.
type Sinks []Sink

func (s Sinks) Show(ctx context.Context, res Result) error {
	var errs []error
	for _, sink := range s {
		if sink == nil {
			continue
		}
		if err := sink.Show(ctx, res); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Run polls until ctx is done or the sink returns ErrQuit.
// No overlap, no retries: a failed cycle is logged and skipped.
// Returns nil on a normal stop. The caller releases the source afterwards.
func (p *Poller) Run(ctx context.Context, sink Sink) error {
	p.state = Running
	defer func() { p.state = Stopped }()

	timer := time.NewTimer(0)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-timer.C:
		}
		if ctx.Err() != nil {
			return nil
		}

		res := p.PollOnce()
		if res.Err != nil {
			logf("%s cycle %d skipped: %v", p.cfg.DeviceID, res.Seq, res.Err)
		}

		if sink != nil {
			if err := sink.Show(ctx, res); err != nil {
				if errors.Is(err, ErrQuit) {
					return nil
				}
				logf("%s cycle %d sink: %v", p.cfg.DeviceID, res.Seq, err)
			}
		}

		timer.Reset(p.cfg.Interval)
	}
}
