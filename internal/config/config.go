// internal/config/config.go
package config

import (
	"bytes"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	DeviceID string          `yaml:"device_id"`
	Device   DeviceConfig    `yaml:"device"`
	Grid     GridConfig      `yaml:"grid"`
	Display  DisplayConfig   `yaml:"display"`
	Motion   *MotionConfig   `yaml:"motion"`
	MQTT     *MQTTConfig     `yaml:"mqtt"`
	Snapshot *SnapshotConfig `yaml:"snapshot"`
}

// ---- DEVICE ----

type DeviceConfig struct {
	Mode      string `yaml:"mode"`     // tcp | rtu
	Endpoint  string `yaml:"endpoint"` // host:port or serial device
	UnitID    uint8  `yaml:"unit_id"`
	TimeoutMs int    `yaml:"timeout_ms"`

	// RTU only
	BaudRate int    `yaml:"baud_rate"`
	DataBits int    `yaml:"data_bits"`
	Parity   string `yaml:"parity"` // N | E | O
	StopBits int    `yaml:"stop_bits"`
}

// ---- TACTILE GRID ----

type GridConfig struct {
	Rows      int     `yaml:"rows"`
	Cols      int     `yaml:"cols"`
	FullScale float64 `yaml:"full_scale"`
}

// ---- DISPLAY / POLL ----

type DisplayConfig struct {
	Scale      int  `yaml:"scale"`
	IntervalMs int  `yaml:"interval_ms"`
	Headless   bool `yaml:"headless"`
}

// ---- STARTUP MOTION (optional) ----

// MotionConfig vectors are applied speed, force, angle. A nil vector is skipped.
type MotionConfig struct {
	Speed []int `yaml:"speed"`
	Force []int `yaml:"force"`
	Angle []int `yaml:"angle"`

	SpeedSettleMs int `yaml:"speed_settle_ms"`
	ForceSettleMs int `yaml:"force_settle_ms"`
	StartDelayMs  int `yaml:"start_delay_ms"`
}

// ---- MQTT (optional) ----

type MQTTConfig struct {
	Broker   string `yaml:"broker"` // e.g. tcp://mqtt:1883
	ClientID string `yaml:"client_id"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`
	TLS      bool   `yaml:"tls"`
	Topic    string `yaml:"topic"`
	QoS      byte   `yaml:"qos"`
	Retain   bool   `yaml:"retain"`
}

// ---- SNAPSHOT (optional) ----

type SnapshotConfig struct {
	Path  string `yaml:"path"`
	Every int    `yaml:"every"` // write every N frames
	Scale int    `yaml:"scale"`
}

// Load reads a YAML config and fills defaults. An empty path yields the
// built-in defaults. Unknown keys are rejected.
func Load(path string) (*Config, error) {
	cfg, err := Decode(path)
	if err != nil {
		return nil, err
	}
	Normalize(cfg)
	return cfg, nil
}

// Decode reads a YAML config without filling defaults, so callers can
// apply overrides before Normalize derives dependent values.
func Decode(path string) (*Config, error) {
	cfg := &Config{}
	if path == "" {
		return cfg, nil
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return cfg, nil
}

// Timeout returns the transport timeout.
func (d DeviceConfig) Timeout() time.Duration {
	return time.Duration(d.TimeoutMs) * time.Millisecond
}

// Interval returns the poll interval.
func (d DisplayConfig) Interval() time.Duration {
	return time.Duration(d.IntervalMs) * time.Millisecond
}
