// cmd/touchhand/root.go
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tamzrod/touchhand/internal/config"
	"github.com/tamzrod/touchhand/internal/hand"
)

var (
	// Config file
	cfgPath string

	// Connection overrides
	deviceID  string
	mode      string
	endpoint  string
	unitID    uint8
	timeoutMs int
)

// connect opens the hand session. Replaced in tests.
var connect = InitializeHand

var rootCmd = &cobra.Command{
	Use:   "touchhand",
	Short: "Tactile sensor viewer and register tool for a Modbus robotic hand",
	Long: `touchhand talks to a six-finger robotic hand over Modbus TCP or RTU.

It shows the 10x8 tactile sensor block as a live heat map, reads and writes
the actuator vectors, and runs the device maintenance commands.

Connection settings come from --config (YAML) and may be overridden per call:
  TCP: --endpoint 192.168.11.210:6000
  RTU: --mode rtu --endpoint /dev/ttyUSB0`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", "", "YAML config file (defaults apply when empty)")
	rootCmd.PersistentFlags().StringVar(&deviceID, "device-id", "", "Device id used in titles and MQTT topics")
	rootCmd.PersistentFlags().StringVar(&mode, "mode", "", "Transport: tcp or rtu")
	rootCmd.PersistentFlags().StringVarP(&endpoint, "endpoint", "e", "", "host:port (tcp) or serial device (rtu)")
	rootCmd.PersistentFlags().Uint8VarP(&unitID, "unit-id", "u", 0, "Modbus unit id")
	rootCmd.PersistentFlags().IntVar(&timeoutMs, "timeout-ms", 0, "Transport timeout in milliseconds")
}

// loadConfig reads the config file, applies flag overrides (root first,
// then extra), fills defaults and validates.
func loadConfig(cmd *cobra.Command, extra ...func(cfg *config.Config)) (*config.Config, error) {
	cfg, err := config.Decode(cfgPath)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("device-id") {
		cfg.DeviceID = deviceID
	}
	if flags.Changed("mode") {
		cfg.Device.Mode = mode
	}
	if flags.Changed("endpoint") {
		cfg.Device.Endpoint = endpoint
	}
	if flags.Changed("unit-id") {
		cfg.Device.UnitID = unitID
	}
	if flags.Changed("timeout-ms") {
		cfg.Device.TimeoutMs = timeoutMs
	}
	for _, apply := range extra {
		apply(cfg)
	}

	config.Normalize(cfg)
	if err := config.Validate(cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return cfg, nil
}

// withHand loads config, connects and runs fn. The session is closed on return.
func withHand(cmd *cobra.Command, fn func(h *hand.Hand) error) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	h, cleanup, err := connect(cfg)
	if err != nil {
		return err
	}
	defer cleanup()
	return fn(h)
}
