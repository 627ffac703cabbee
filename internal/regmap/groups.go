// internal/regmap/groups.go
package regmap

import "fmt"

// Vector is a closed set of 6-register actuator groups.
type Vector uint8

const (
	AngleSet Vector = iota + 1
	ForceSet
	SpeedSet
	AngleAct
	ForceAct
)

var vectorNames = map[Vector]string{
	AngleSet: "angleSet",
	ForceSet: "forceSet",
	SpeedSet: "speedSet",
	AngleAct: "angleAct",
	ForceAct: "forceAct",
}

func (v Vector) String() string {
	if n, ok := vectorNames[v]; ok {
		return n
	}
	return fmt.Sprintf("Vector(%d)", uint8(v))
}

// Address returns the base register of the group.
func (v Vector) Address() (uint16, error) {
	n, ok := vectorNames[v]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrUnknownRegister, v)
	}
	return Lookup(n)
}

// Writable reports whether the group accepts writes (the *Set registers).
func (v Vector) Writable() bool {
	switch v {
	case AngleSet, ForceSet, SpeedSet:
		return true
	}
	return false
}

// ParseVector resolves a register name to a vector group.
func ParseVector(name string) (Vector, error) {
	for v, n := range vectorNames {
		if n == name {
			return v, nil
		}
	}
	return 0, fmt.Errorf("%w: %q is not one of angleSet/forceSet/speedSet/angleAct/forceAct", ErrUnknownRegister, name)
}

// Triple is a closed set of 3-register status groups. Each register
// carries two byte-wide fields.
type Triple uint8

const (
	ErrCode Triple = iota + 1
	StatusCode
	Temp
)

var tripleNames = map[Triple]string{
	ErrCode:    "errCode",
	StatusCode: "statusCode",
	Temp:       "temp",
}

func (t Triple) String() string {
	if n, ok := tripleNames[t]; ok {
		return n
	}
	return fmt.Sprintf("Triple(%d)", uint8(t))
}

// Address returns the base register of the group.
func (t Triple) Address() (uint16, error) {
	n, ok := tripleNames[t]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrUnknownRegister, t)
	}
	return Lookup(n)
}

// ParseTriple resolves a register name to a status group.
func ParseTriple(name string) (Triple, error) {
	for t, n := range tripleNames {
		if n == name {
			return t, nil
		}
	}
	return 0, fmt.Errorf("%w: %q is not one of errCode/statusCode/temp", ErrUnknownRegister, name)
}
