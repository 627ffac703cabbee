// internal/motion/motion.go
package motion

import (
	"context"
	"fmt"
	"time"

	"github.com/tamzrod/touchhand/internal/monitoring"
	"github.com/tamzrod/touchhand/internal/regmap"
)

var logf = monitoring.For("motion")

// VectorWriter is the exact contract motion uses.
type VectorWriter interface {
	WriteVector6(v regmap.Vector, values []int) error
}

// Apply runs the plan step by step. The first failed write aborts the
// plan; later vectors are never sent on top of a partial setup.
func Apply(ctx context.Context, w VectorWriter, plan Plan) error {
	for i, st := range plan.Steps {
		if err := w.WriteVector6(st.Vector, st.Values); err != nil {
			return fmt.Errorf("motion: step %d %s: %w", i+1, st.Vector, err)
		}
		logf("%s <- %v", st.Vector, st.Values)

		if err := sleep(ctx, st.Settle); err != nil {
			return err
		}
	}

	if plan.Empty() {
		return nil
	}
	return sleep(ctx, plan.StartDelay)
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
