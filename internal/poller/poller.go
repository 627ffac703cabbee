// internal/poller/poller.go
package poller

import (
	"errors"
	"time"

	"github.com/tamzrod/touchhand/internal/frame"
	"github.com/tamzrod/touchhand/internal/status"
)

// GridSource abstracts the one read the poller needs.
type GridSource interface {
	ReadSensorGrid() ([]uint16, error)
}

// Config is the minimal runtime config the poller needs.
type Config struct {
	DeviceID  string
	Interval  time.Duration
	Rows      int
	Cols      int
	FullScale float64
}

// Poller is a dumb, clock-driven reader.
// It is the only user of its GridSource while running.
type Poller struct {
	cfg     Config
	src     GridSource
	tracker *status.Tracker
	seq     uint64
	state   State

	now func() time.Time
}

// New creates a poller with immutable config.
func New(cfg Config, src GridSource) (*Poller, error) {
	if cfg.DeviceID == "" {
		return nil, errors.New("poller: device id required")
	}
	if cfg.Interval <= 0 {
		return nil, errors.New("poller: interval must be > 0")
	}
	if cfg.Rows <= 0 || cfg.Cols <= 0 {
		return nil, errors.New("poller: grid dims must be > 0")
	}
	if cfg.FullScale <= 0 {
		return nil, errors.New("poller: full scale must be > 0")
	}
	if src == nil {
		return nil, errors.New("poller: grid source required")
	}
	return &Poller{
		cfg:     cfg,
		src:     src,
		tracker: status.NewTracker(),
		state:   Stopped,
		now:     time.Now,
	}, nil
}

// State returns the loop state.
func (p *Poller) State() State {
	return p.state
}

// PollOnce performs exactly one poll cycle.
// All-or-nothing: a failed read or reshape yields no frame.
func (p *Poller) PollOnce() Result {
	p.seq++
	res := Result{
		DeviceID: p.cfg.DeviceID,
		Seq:      p.seq,
		At:       p.now(),
	}

	raw, err := p.src.ReadSensorGrid()
	if err == nil {
		var g *frame.Grid
		g, err = frame.Reshape(raw, p.cfg.Rows, p.cfg.Cols)
		if err == nil {
			res.Raw = raw
			res.Grid = g
			res.Image = frame.ToImage(g, p.cfg.FullScale)
		}
	}

	res.Err = err
	res.Status = p.tracker.Observe(err, res.At)
	return res
}
