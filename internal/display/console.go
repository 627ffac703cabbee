// internal/display/console.go
package display

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/tamzrod/touchhand/internal/poller"
)

// Console is the headless sink: it prints each frame as a matrix.
type Console struct {
	W io.Writer
}

func (c Console) Show(_ context.Context, res poller.Result) error {
	if !res.OK() {
		_, err := fmt.Fprintf(c.W, "#%d %s skipped: %v\n", res.Seq, res.At.Format(time.RFC3339), res.Err)
		return err
	}
	_, err := fmt.Fprintf(c.W, "#%d %s\n%v\n", res.Seq, res.At.Format(time.RFC3339), res.Grid)
	return err
}
