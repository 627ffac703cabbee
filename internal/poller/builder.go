// internal/poller/builder.go
package poller

import (
	"github.com/tamzrod/touchhand/internal/config"
)

// Build constructs a Poller from normalized, validated config.
// The source lifecycle stays with the caller.
func Build(cfg config.Config, src GridSource) (*Poller, error) {
	return New(
		Config{
			DeviceID:  cfg.DeviceID,
			Interval:  cfg.Display.Interval(),
			Rows:      cfg.Grid.Rows,
			Cols:      cfg.Grid.Cols,
			FullScale: cfg.Grid.FullScale,
		},
		src,
	)
}
