// internal/regmap/directory.go
package regmap

import (
	"errors"
	"fmt"
	"sort"
)

// ErrUnknownRegister is returned for any name outside the register table
// or outside the group an accessor accepts.
var ErrUnknownRegister = errors.New("unknown register name")

// Entry is one row of the register directory.
type Entry struct {
	Name    string
	Address uint16
}

// Register table of the hand firmware.
// Addresses are protocol-locked and MUST NOT be configurable.
var directory = map[string]uint16{
	"ID":         1000,
	"baudrate":   1001,
	"clearErr":   1004,
	"forceClb":   1009,
	"angleSet":   1486,
	"forceSet":   1498,
	"speedSet":   1522,
	"angleAct":   1546,
	"forceAct":   1582,
	"errCode":    1606,
	"statusCode": 1612,
	"temp":       1618,
	"actionSeq":  2320,
	"actionRun":  2322,
	"index":      4320, // first tactile register of the selected sensor area
}

// ---- BLOCK GEOMETRY ----

// VectorLen is the number of registers in an actuator vector (one per DOF).
const VectorLen = 6

// TripleLen is the number of registers read for a status group.
const TripleLen = 3

// SensorCells is the number of registers in one tactile frame.
const SensorCells = 80

// Lookup returns the base address for a symbolic register name.
func Lookup(name string) (uint16, error) {
	addr, ok := directory[name]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownRegister, name)
	}
	return addr, nil
}

// MustLookup is Lookup for names known at compile time.
func MustLookup(name string) uint16 {
	addr, err := Lookup(name)
	if err != nil {
		panic(err)
	}
	return addr
}

// Entries returns the directory ordered by address.
func Entries() []Entry {
	out := make([]Entry, 0, len(directory))
	for name, addr := range directory {
		out = append(out, Entry{Name: name, Address: addr})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Address < out[j].Address })
	return out
}
