// internal/config/normalize.go
package config

// Defaults of the reference installation.
const (
	DefaultEndpoint   = "192.168.11.210:6000"
	DefaultMode       = "tcp"
	DefaultUnitID     = 1
	DefaultTimeoutMs  = 1000
	DefaultRows       = 10
	DefaultCols       = 8
	DefaultFullScale  = 2000
	DefaultScale      = 50
	DefaultIntervalMs = 200

	DefaultSpeedSettleMs = 2000
	DefaultForceSettleMs = 1000
	DefaultStartDelayMs  = 1000
)

// Normalize fills zero values with defaults.
// It is allowed to mutate configuration and MUST run before Validate.
func Normalize(cfg *Config) {
	if cfg == nil {
		return
	}

	if cfg.DeviceID == "" {
		cfg.DeviceID = "hand"
	}

	d := &cfg.Device
	if d.Mode == "" {
		d.Mode = DefaultMode
	}
	if d.Endpoint == "" && d.Mode == DefaultMode {
		d.Endpoint = DefaultEndpoint
	}
	if d.UnitID == 0 {
		d.UnitID = DefaultUnitID
	}
	if d.TimeoutMs == 0 {
		d.TimeoutMs = DefaultTimeoutMs
	}
	if d.Mode == "rtu" {
		if d.BaudRate == 0 {
			d.BaudRate = 115200
		}
		if d.DataBits == 0 {
			d.DataBits = 8
		}
		if d.Parity == "" {
			d.Parity = "N"
		}
		if d.StopBits == 0 {
			d.StopBits = 1
		}
	}

	if cfg.Grid.Rows == 0 {
		cfg.Grid.Rows = DefaultRows
	}
	if cfg.Grid.Cols == 0 {
		cfg.Grid.Cols = DefaultCols
	}
	if cfg.Grid.FullScale == 0 {
		cfg.Grid.FullScale = DefaultFullScale
	}

	if cfg.Display.Scale == 0 {
		cfg.Display.Scale = DefaultScale
	}
	if cfg.Display.IntervalMs == 0 {
		cfg.Display.IntervalMs = DefaultIntervalMs
	}

	if m := cfg.Motion; m != nil {
		if m.SpeedSettleMs == 0 {
			m.SpeedSettleMs = DefaultSpeedSettleMs
		}
		if m.ForceSettleMs == 0 {
			m.ForceSettleMs = DefaultForceSettleMs
		}
		if m.StartDelayMs == 0 {
			m.StartDelayMs = DefaultStartDelayMs
		}
	}

	if q := cfg.MQTT; q != nil && q.Topic == "" {
		q.Topic = "touchhand/" + cfg.DeviceID + "/grid"
	}

	if s := cfg.Snapshot; s != nil {
		if s.Every == 0 {
			s.Every = 1
		}
		if s.Scale == 0 {
			s.Scale = cfg.Display.Scale
		}
	}
}
