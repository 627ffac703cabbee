// internal/hand/errors.go
package hand

import (
	"errors"

	"github.com/tamzrod/touchhand/internal/regmap"
)

var (
	// ErrUnknownRegister is returned when an accessor is called with a
	// register outside the group it serves.
	ErrUnknownRegister = regmap.ErrUnknownRegister

	// ErrTransport wraps any failure reported by the transport.
	ErrTransport = errors.New("transport error")

	// ErrNoData means a read returned fewer registers than requested.
	// Partial results are never handed to callers.
	ErrNoData = errors.New("no data")

	// ErrVectorLength means a write vector did not carry exactly 6 values.
	ErrVectorLength = errors.New("vector must have exactly 6 values")

	// ErrConnection means the session could not be established.
	ErrConnection = errors.New("connection failure")
)
