// cmd/touchhand/providers.go
package main

import (
	"github.com/tamzrod/touchhand/internal/config"
	"github.com/tamzrod/touchhand/internal/hand/modbus"
	"github.com/tamzrod/touchhand/internal/monitoring"
)

func provideTransportConfig(cfg *config.Config) modbus.Config {
	d := cfg.Device
	return modbus.Config{
		Mode:     modbus.Mode(d.Mode),
		Endpoint: d.Endpoint,
		UnitID:   d.UnitID,
		Timeout:  d.Timeout(),
		BaudRate: d.BaudRate,
		DataBits: d.DataBits,
		Parity:   d.Parity,
		StopBits: d.StopBits,
	}
}

func provideTransport(c modbus.Config) (*modbus.Client, func(), error) {
	client, err := modbus.New(c)
	if err != nil {
		return nil, nil, err
	}
	return client, func() {
		if err := client.Close(); err != nil {
			monitoring.Logf("close %s: %v", c.Endpoint, err)
		}
	}, nil
}
