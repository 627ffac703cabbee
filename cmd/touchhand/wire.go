//go:build wireinject
// +build wireinject

package main

import (
	"github.com/google/wire"

	"github.com/tamzrod/touchhand/internal/config"
	"github.com/tamzrod/touchhand/internal/hand"
	"github.com/tamzrod/touchhand/internal/hand/modbus"
)

func InitializeHand(cfg *config.Config) (*hand.Hand, func(), error) {
	wire.Build(
		provideTransportConfig,
		provideTransport,
		wire.Bind(new(hand.Transport), new(*modbus.Client)),
		hand.New,
	)
	return nil, nil, nil // wire will generate the result
}
