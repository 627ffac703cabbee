// internal/hand/hand.go
package hand

import (
	"errors"
	"fmt"
)

//go:generate mockgen -destination=mock/transport.go -package=mock github.com/tamzrod/touchhand/internal/hand Transport

// Transport abstracts the Modbus session the hand is reached through.
// The session is connected by the adapter's constructor.
type Transport interface {
	ReadHoldingRegisters(addr, qty uint16) ([]uint16, error)
	WriteRegisters(addr uint16, values []uint16) error
	Close() error
}

// Hand is the register access layer plus typed accessors for one device.
// It owns its transport exclusively; it is not safe for concurrent use.
type Hand struct {
	tr Transport
}

// New wraps a connected transport.
func New(tr Transport) *Hand {
	return &Hand{tr: tr}
}

// Close closes the underlying session.
func (h *Hand) Close() error {
	if h == nil || h.tr == nil {
		return nil
	}
	return h.tr.Close()
}

// ---- register access layer ----

// WriteRegisters writes values starting at addr.
// Failure is not distinguished by cause at this layer.
func (h *Hand) WriteRegisters(addr uint16, values []uint16) error {
	if h == nil || h.tr == nil {
		return fmt.Errorf("%w: not connected", ErrTransport)
	}
	if err := h.tr.WriteRegisters(addr, values); err != nil {
		return fmt.Errorf("%w: write addr=%d qty=%d: %w", ErrTransport, addr, len(values), err)
	}
	return nil
}

// ReadRegisters reads count holding registers starting at addr.
// On transport failure the result is empty, never partial.
func (h *Hand) ReadRegisters(addr uint16, count int) ([]uint16, error) {
	if count <= 0 {
		return []uint16{}, errors.New("hand: read count must be > 0")
	}
	if h == nil || h.tr == nil {
		return []uint16{}, fmt.Errorf("%w: not connected", ErrTransport)
	}
	regs, err := h.tr.ReadHoldingRegisters(addr, uint16(count))
	if err != nil {
		return []uint16{}, fmt.Errorf("%w: read addr=%d qty=%d: %w", ErrTransport, addr, count, err)
	}
	return regs, nil
}
