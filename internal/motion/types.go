// internal/motion/types.go
package motion

import (
	"time"

	"github.com/tamzrod/touchhand/internal/regmap"
)

// Step is one vector write followed by a settle pause.
type Step struct {
	Vector regmap.Vector
	Values []int
	Settle time.Duration
}

// Plan is the ordered startup motion.
// Geometry only: values are validated before a Plan is built.
type Plan struct {
	Steps      []Step
	StartDelay time.Duration // pause after the last step, before polling
}

// Empty reports whether the plan writes nothing.
func (p Plan) Empty() bool {
	return len(p.Steps) == 0
}
