// internal/status/constants.go
package status

// ---- HEALTH CODES ----

// HealthUnknown represents the boot state before the first poll.
const HealthUnknown uint16 = 0

// HealthOK represents a device delivering frames.
const HealthOK uint16 = 1

// HealthError represents a device whose last poll failed.
const HealthError uint16 = 2

// ---- LIMITS ----

// MaxSecondsInError is the saturation point of SecondsInError.
const MaxSecondsInError = 65535

// HealthName returns a short label for a health code.
func HealthName(h uint16) string {
	switch h {
	case HealthOK:
		return "ok"
	case HealthError:
		return "error"
	default:
		return "unknown"
	}
}
