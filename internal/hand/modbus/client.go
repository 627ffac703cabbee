// internal/hand/modbus/client.go
package modbus

import (
	"errors"
	"fmt"
	"time"

	"github.com/goburrow/modbus"

	"github.com/tamzrod/touchhand/internal/hand"
)

// Mode selects the physical transport.
type Mode string

const (
	ModeTCP Mode = "tcp"
	ModeRTU Mode = "rtu"
)

// Config is minimal transport config.
type Config struct {
	Mode     Mode
	Endpoint string // host:port for TCP, device path for RTU
	UnitID   uint8
	Timeout  time.Duration

	// RTU only
	BaudRate int
	DataBits int
	Parity   string
	StopBits int
}

type handler interface {
	modbus.ClientHandler
	Connect() error
	Close() error
}

// Client implements hand.Transport over goburrow/modbus.
// One session, one outstanding request at a time.
type Client struct {
	handler handler
	client  modbus.Client
}

// ErrConnect marks a failure to establish the session.
var ErrConnect = hand.ErrConnection

// New creates a connected Modbus client. No retries.
func New(cfg Config) (*Client, error) {
	if cfg.Endpoint == "" {
		return nil, errors.New("modbus client: endpoint required")
	}

	var h handler
	switch cfg.Mode {
	case "", ModeTCP:
		th := modbus.NewTCPClientHandler(cfg.Endpoint)
		th.Timeout = cfg.Timeout
		th.SlaveId = cfg.UnitID
		h = th
	case ModeRTU:
		rh := modbus.NewRTUClientHandler(cfg.Endpoint)
		rh.BaudRate = cfg.BaudRate
		rh.DataBits = cfg.DataBits
		rh.Parity = cfg.Parity
		rh.StopBits = cfg.StopBits
		rh.SlaveId = cfg.UnitID
		rh.Timeout = cfg.Timeout
		h = rh
	default:
		return nil, fmt.Errorf("modbus client: unsupported mode %q", cfg.Mode)
	}

	if err := h.Connect(); err != nil {
		return nil, fmt.Errorf("%w: %s %s: %w", ErrConnect, cfg.Mode, cfg.Endpoint, err)
	}

	return &Client{
		handler: h,
		client:  modbus.NewClient(h),
	}, nil
}

// Close closes the session.
func (c *Client) Close() error {
	if c == nil || c.handler == nil {
		return nil
	}
	return c.handler.Close()
}

// ---- hand.Transport ----

func (c *Client) ReadHoldingRegisters(addr, qty uint16) ([]uint16, error) {
	if qty == 0 {
		return nil, nil
	}
	raw, err := c.client.ReadHoldingRegisters(addr, qty)
	if err != nil {
		return nil, err
	}
	if len(raw)%2 != 0 {
		return nil, errors.New("modbus: read-registers byte count not even")
	}
	return unpackRegisters(raw), nil
}

func (c *Client) WriteRegisters(addr uint16, regs []uint16) error {
	qty := uint16(len(regs))
	_, err := c.client.WriteMultipleRegisters(addr, qty, packRegisters(regs))
	return err
}

// ---- helpers (pure geometry) ----

// Modbus register memory order (BIG-ENDIAN)
func packRegisters(regs []uint16) []byte {
	out := make([]byte, len(regs)*2)
	for i, r := range regs {
		out[2*i] = byte(r >> 8)
		out[2*i+1] = byte(r)
	}
	return out
}

func unpackRegisters(data []byte) []uint16 {
	n := len(data) / 2
	out := make([]uint16, n)
	for i := 0; i < n; i++ {
		out[i] = uint16(data[2*i])<<8 | uint16(data[2*i+1])
	}
	return out
}
