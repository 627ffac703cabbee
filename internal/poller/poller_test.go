// internal/poller/poller_test.go
package poller

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/tamzrod/touchhand/internal/config"
	"github.com/tamzrod/touchhand/internal/frame"
	"github.com/tamzrod/touchhand/internal/monitoring"
	"github.com/tamzrod/touchhand/internal/status"
)

type fakeSource struct {
	calls int
	fail  map[int]bool // 1-based call numbers that fail
	short bool
}

func (f *fakeSource) ReadSensorGrid() ([]uint16, error) {
	f.calls++
	if f.fail[f.calls] {
		return []uint16{}, errors.New("no data")
	}
	n := 80
	if f.short {
		n = 79
	}
	out := make([]uint16, n)
	for i := range out {
		out[i] = uint16(i * 25)
	}
	return out, nil
}

func testConfig() Config {
	return Config{
		DeviceID:  "hand",
		Interval:  time.Millisecond,
		Rows:      10,
		Cols:      8,
		FullScale: 2000,
	}
}

func mute(t *testing.T) {
	t.Helper()
	monitoring.SetLogger(nil)
	t.Cleanup(func() { monitoring.SetLogger(nil) })
}

func TestNew_RejectsBadConfig(t *testing.T) {
	bad := []Config{
		{Interval: time.Second, Rows: 10, Cols: 8, FullScale: 1},
		{DeviceID: "h", Rows: 10, Cols: 8, FullScale: 1},
		{DeviceID: "h", Interval: time.Second, Cols: 8, FullScale: 1},
		{DeviceID: "h", Interval: time.Second, Rows: 10, Cols: 8},
	}
	for i, cfg := range bad {
		if _, err := New(cfg, &fakeSource{}); err == nil {
			t.Fatalf("case %d: expected error", i)
		}
	}
	if _, err := New(testConfig(), nil); err == nil {
		t.Fatalf("expected error for nil source")
	}
}

func TestPollOnce_Success(t *testing.T) {
	p, err := New(testConfig(), &fakeSource{})
	if err != nil {
		t.Fatalf("New() err=%v", err)
	}
	fixed := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	p.now = func() time.Time { return fixed }

	res := p.PollOnce()
	if !res.OK() {
		t.Fatalf("PollOnce err=%v", res.Err)
	}
	if res.Seq != 1 || !res.At.Equal(fixed) {
		t.Fatalf("unexpected seq/at: %d %v", res.Seq, res.At)
	}
	if r, c := res.Grid.Dims(); r != 10 || c != 8 {
		t.Fatalf("grid dims %dx%d", r, c)
	}
	// index 79 -> row 9, col 7, value 1975
	if got := res.Grid.At(9, 7); got != 1975 {
		t.Fatalf("At(9,7)=%v", got)
	}
	if got := res.Image.RGBAAt(7, 9).R; got != frame.Red(1975, 2000) {
		t.Fatalf("pixel red=%d", got)
	}
	if res.Status.Health != status.HealthOK || res.Status.Frames != 1 {
		t.Fatalf("unexpected status: %+v", res.Status)
	}
}

func TestPollOnce_Failure(t *testing.T) {
	p, err := New(testConfig(), &fakeSource{fail: map[int]bool{1: true}})
	if err != nil {
		t.Fatalf("New() err=%v", err)
	}

	res := p.PollOnce()
	if res.Err == nil {
		t.Fatalf("expected error, got nil")
	}
	if res.OK() || res.Grid != nil || res.Image != nil {
		t.Fatalf("failed cycle must carry no frame")
	}
	if res.Status.Health != status.HealthError || res.Status.Failures != 1 {
		t.Fatalf("unexpected status: %+v", res.Status)
	}
}

func TestPollOnce_ShortReadIsShapeMismatch(t *testing.T) {
	p, _ := New(testConfig(), &fakeSource{short: true})

	res := p.PollOnce()
	if !errors.Is(res.Err, frame.ErrShapeMismatch) {
		t.Fatalf("expected ErrShapeMismatch, got %v", res.Err)
	}
}

func TestRun_SkipsFailedCycleAndContinues(t *testing.T) {
	mute(t)
	src := &fakeSource{fail: map[int]bool{2: true}}
	p, _ := New(testConfig(), src)

	var got []Result
	sink := SinkFunc(func(_ context.Context, res Result) error {
		if p.State() != Running {
			t.Errorf("state during run = %v", p.State())
		}
		got = append(got, res)
		if len(got) == 3 {
			return ErrQuit
		}
		return nil
	})

	if err := p.Run(context.Background(), sink); err != nil {
		t.Fatalf("Run err=%v", err)
	}
	if p.State() != Stopped {
		t.Fatalf("state after run = %v", p.State())
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 results, got %d", len(got))
	}
	if !got[0].OK() || got[1].OK() || !got[2].OK() {
		t.Fatalf("unexpected ok pattern: %v %v %v", got[0].OK(), got[1].OK(), got[2].OK())
	}
	if got[2].Status.Health != status.HealthOK {
		t.Fatalf("expected recovery, got %+v", got[2].Status)
	}
}

func TestRun_StopsOnContextCancel(t *testing.T) {
	mute(t)
	p, _ := New(testConfig(), &fakeSource{})
	ctx, cancel := context.WithCancel(context.Background())

	n := 0
	sink := SinkFunc(func(context.Context, Result) error {
		n++
		if n == 2 {
			cancel()
		}
		return nil
	})

	done := make(chan error, 1)
	go func() { done <- p.Run(ctx, sink) }()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Run err=%v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("Run did not stop after cancel")
	}
	if n != 2 {
		t.Fatalf("expected exactly 2 cycles, got %d", n)
	}
}

func TestRun_SinkErrorDoesNotStopLoop(t *testing.T) {
	mute(t)
	p, _ := New(testConfig(), &fakeSource{})

	n := 0
	sink := Sinks{
		SinkFunc(func(context.Context, Result) error { return errors.New("broker down") }),
		SinkFunc(func(context.Context, Result) error {
			n++
			if n == 3 {
				return ErrQuit
			}
			return nil
		}),
	}

	if err := p.Run(context.Background(), sink); err != nil {
		t.Fatalf("Run err=%v", err)
	}
	if n != 3 {
		t.Fatalf("expected 3 cycles, got %d", n)
	}
}

func TestSinks_JoinsErrors(t *testing.T) {
	e1 := errors.New("one")
	s := Sinks{
		SinkFunc(func(context.Context, Result) error { return e1 }),
		nil,
		SinkFunc(func(context.Context, Result) error { return ErrQuit }),
	}

	err := s.Show(context.Background(), Result{})
	if !errors.Is(err, e1) || !errors.Is(err, ErrQuit) {
		t.Fatalf("expected joined errors, got %v", err)
	}
	if err := (Sinks{}).Show(context.Background(), Result{}); err != nil {
		t.Fatalf("empty fan-out err=%v", err)
	}
}

func TestBuild_MapsConfig(t *testing.T) {
	cfg, err := config.Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	p, err := Build(*cfg, &fakeSource{})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if p.cfg.Interval != 200*time.Millisecond || p.cfg.Rows != 10 || p.cfg.Cols != 8 || p.cfg.DeviceID != "hand" {
		t.Fatalf("unexpected poller config: %+v", p.cfg)
	}
}
