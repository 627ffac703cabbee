// internal/motion/builder.go
package motion

import (
	"time"

	"github.com/tamzrod/touchhand/internal/config"
	"github.com/tamzrod/touchhand/internal/regmap"
)

func ms(v int) time.Duration {
	return time.Duration(v) * time.Millisecond
}

// Build turns the optional motion block into a Plan.
// Order is fixed: speed, force, angle. Missing vectors are skipped.
func Build(m *config.MotionConfig) Plan {
	if m == nil {
		return Plan{}
	}

	var steps []Step
	if m.Speed != nil {
		steps = append(steps, Step{Vector: regmap.SpeedSet, Values: m.Speed, Settle: ms(m.SpeedSettleMs)})
	}
	if m.Force != nil {
		steps = append(steps, Step{Vector: regmap.ForceSet, Values: m.Force, Settle: ms(m.ForceSettleMs)})
	}
	if m.Angle != nil {
		steps = append(steps, Step{Vector: regmap.AngleSet, Values: m.Angle})
	}
	if len(steps) == 0 {
		return Plan{}
	}

	return Plan{Steps: steps, StartDelay: ms(m.StartDelayMs)}
}
