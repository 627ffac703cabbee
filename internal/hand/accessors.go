// internal/hand/accessors.go
package hand

import (
	"fmt"

	"github.com/tamzrod/touchhand/internal/regmap"
)

// Unchanged is the write-vector sentinel meaning "leave this DOF as is".
// It is masked like any other value and reaches the wire as 0xFFFF.
const Unchanged = -1

// WriteVector6 writes one of angleSet/forceSet/speedSet.
// Each value is masked to 16 bits; range checks are the caller's job.
func (h *Hand) WriteVector6(v regmap.Vector, values []int) error {
	if !v.Writable() {
		return fmt.Errorf("%w: %s is not a writable vector", ErrUnknownRegister, v)
	}
	if len(values) != regmap.VectorLen {
		return fmt.Errorf("%w: %s got %d", ErrVectorLength, v, len(values))
	}
	addr, err := v.Address()
	if err != nil {
		return err
	}

	regs := make([]uint16, regmap.VectorLen)
	for i, val := range values {
		regs[i] = uint16(val & 0xFFFF)
	}
	return h.WriteRegisters(addr, regs)
}

// ReadVector6 reads a 6-register actuator vector verbatim.
func (h *Hand) ReadVector6(v regmap.Vector) ([]int, error) {
	addr, err := v.Address()
	if err != nil {
		return nil, err
	}
	regs, err := h.readExactly(addr, regmap.VectorLen, v.String())
	if err != nil {
		return nil, err
	}

	out := make([]int, len(regs))
	for i, r := range regs {
		out[i] = int(r)
	}
	return out, nil
}

// ReadStatusTriple reads errCode/statusCode/temp and splits each register
// into its low byte followed by its high byte.
func (h *Hand) ReadStatusTriple(t regmap.Triple) ([]int, error) {
	addr, err := t.Address()
	if err != nil {
		return nil, err
	}
	regs, err := h.readExactly(addr, regmap.TripleLen, t.String())
	if err != nil {
		return nil, err
	}
	return splitBytes(regs), nil
}

// ReadSensorGrid reads the flat tactile frame from the index register.
// Values are passed through without range validation.
func (h *Hand) ReadSensorGrid() ([]uint16, error) {
	regs, err := h.ReadRegisters(regmap.MustLookup("index"), regmap.SensorCells)
	if err != nil {
		return nil, fmt.Errorf("%w: index: %w", ErrNoData, err)
	}
	return regs, nil
}

// ---- single-register commands ----

// ReadID returns the device ID register.
func (h *Hand) ReadID() (int, error) {
	regs, err := h.readExactly(regmap.MustLookup("ID"), 1, "ID")
	if err != nil {
		return 0, err
	}
	return int(regs[0]), nil
}

// ClearErrors asks the firmware to clear latched actuator errors.
func (h *Hand) ClearErrors() error {
	return h.WriteRegisters(regmap.MustLookup("clearErr"), []uint16{1})
}

// CalibrateForce starts force sensor calibration. The hand must be unloaded.
func (h *Hand) CalibrateForce() error {
	return h.WriteRegisters(regmap.MustLookup("forceClb"), []uint16{1})
}

// RunAction selects a stored action sequence and starts it.
func (h *Hand) RunAction(seq int) error {
	if seq < 0 || seq > 0xFFFF {
		return fmt.Errorf("hand: action sequence %d out of range", seq)
	}
	if err := h.WriteRegisters(regmap.MustLookup("actionSeq"), []uint16{uint16(seq)}); err != nil {
		return err
	}
	return h.WriteRegisters(regmap.MustLookup("actionRun"), []uint16{1})
}

// ---- helpers ----

func (h *Hand) readExactly(addr uint16, n int, name string) ([]uint16, error) {
	regs, err := h.ReadRegisters(addr, n)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrNoData, name, err)
	}
	if len(regs) < n {
		return nil, fmt.Errorf("%w: %s got %d of %d registers", ErrNoData, name, len(regs), n)
	}
	return regs[:n], nil
}

func splitBytes(regs []uint16) []int {
	out := make([]int, 0, 2*len(regs))
	for _, r := range regs {
		out = append(out, int(r&0xFF), int((r>>8)&0xFF))
	}
	return out
}
