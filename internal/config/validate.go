// internal/config/validate.go
package config

import (
	"fmt"

	"github.com/tamzrod/touchhand/internal/regmap"
)

// Validate checks configuration correctness.
// It performs declarative validation only.
// It MUST NOT mutate configuration.
func Validate(cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("config: nil")
	}

	// ------------------------------------------------------------
	// DEVICE
	// ------------------------------------------------------------

	d := cfg.Device
	switch d.Mode {
	case "tcp", "rtu":
	default:
		return fmt.Errorf("device.mode must be tcp or rtu, got %q", d.Mode)
	}
	if d.Endpoint == "" {
		return fmt.Errorf("device.endpoint required")
	}
	if d.TimeoutMs < 0 {
		return fmt.Errorf("device.timeout_ms must be >= 0, got %d", d.TimeoutMs)
	}
	if d.Mode == "rtu" {
		switch d.Parity {
		case "N", "E", "O":
		default:
			return fmt.Errorf("device.parity must be N, E or O, got %q", d.Parity)
		}
	}

	// ------------------------------------------------------------
	// GRID GEOMETRY
	// ------------------------------------------------------------

	g := cfg.Grid
	if g.Rows <= 0 || g.Cols <= 0 {
		return fmt.Errorf("grid dims must be > 0, got %dx%d", g.Rows, g.Cols)
	}
	if g.Rows*g.Cols != regmap.SensorCells {
		return fmt.Errorf("grid %dx%d does not cover the %d sensor registers", g.Rows, g.Cols, regmap.SensorCells)
	}
	if g.FullScale <= 0 {
		return fmt.Errorf("grid.full_scale must be > 0, got %v", g.FullScale)
	}

	// ------------------------------------------------------------
	// DISPLAY / POLL
	// ------------------------------------------------------------

	if cfg.Display.IntervalMs <= 0 {
		return fmt.Errorf("display.interval_ms must be > 0, got %d", cfg.Display.IntervalMs)
	}
	if cfg.Display.Scale < 1 {
		return fmt.Errorf("display.scale must be >= 1, got %d", cfg.Display.Scale)
	}

	// ------------------------------------------------------------
	// MOTION (OPT-IN)
	// ------------------------------------------------------------

	if m := cfg.Motion; m != nil {
		// same order the motion plan applies them
		vectors := []struct {
			name string
			v    []int
		}{
			{"speed", m.Speed},
			{"force", m.Force},
			{"angle", m.Angle},
		}
		for _, vec := range vectors {
			if vec.v == nil {
				continue
			}
			if err := ValidateVector(vec.v); err != nil {
				return fmt.Errorf("motion.%s: %w", vec.name, err)
			}
		}
		if m.SpeedSettleMs < 0 || m.ForceSettleMs < 0 || m.StartDelayMs < 0 {
			return fmt.Errorf("motion delays must be >= 0")
		}
	}

	// ------------------------------------------------------------
	// MQTT (OPT-IN)
	// ------------------------------------------------------------

	if q := cfg.MQTT; q != nil {
		if q.Broker == "" {
			return fmt.Errorf("mqtt.broker required when mqtt is set")
		}
		if q.QoS > 2 {
			return fmt.Errorf("mqtt.qos must be 0, 1 or 2, got %d", q.QoS)
		}
	}

	// ------------------------------------------------------------
	// SNAPSHOT (OPT-IN)
	// ------------------------------------------------------------

	if s := cfg.Snapshot; s != nil {
		if s.Path == "" {
			return fmt.Errorf("snapshot.path required when snapshot is set")
		}
		if s.Every < 1 || s.Scale < 1 {
			return fmt.Errorf("snapshot.every and snapshot.scale must be >= 1")
		}
	}

	return nil
}

// ValidateVector applies the device convention for actuator vectors:
// exactly 6 values, each in [0, 1000] or -1 for "unchanged".
func ValidateVector(v []int) error {
	if len(v) != regmap.VectorLen {
		return fmt.Errorf("need %d values, got %d", regmap.VectorLen, len(v))
	}
	for i, x := range v {
		if x == -1 {
			continue
		}
		if x < 0 || x > 1000 {
			return fmt.Errorf("value %d at index %d outside 0..1000 (or -1)", x, i)
		}
	}
	return nil
}
