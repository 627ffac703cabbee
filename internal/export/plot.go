// internal/export/plot.go
package export

import (
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/tamzrod/touchhand/internal/frame"
)

// gridXYZ adapts a frame.Grid to plotter.GridXYZ.
// Plot rows grow upwards, so grid row 0 is mapped to the top.
type gridXYZ struct {
	g *frame.Grid
}

func (x gridXYZ) Dims() (c, r int) {
	rows, cols := x.g.Dims()
	return cols, rows
}

func (x gridXYZ) Z(c, r int) float64 {
	rows, _ := x.g.Dims()
	return x.g.At(rows-1-r, c)
}

func (x gridXYZ) X(c int) float64 { return float64(c) }

func (x gridXYZ) Y(r int) float64 { return float64(r) }

// HeatmapPlot builds an annotated heat map of g. Values are clamped to [0, fullScale].
func HeatmapPlot(g *frame.Grid, fullScale float64, title string) (*plot.Plot, error) {
	if g == nil {
		return nil, fmt.Errorf("export: nil grid")
	}
	if fullScale <= 0 {
		return nil, fmt.Errorf("export: full scale must be > 0")
	}

	data := gridXYZ{g: g}
	hm := plotter.NewHeatMap(data, palette.Heat(32, 1))
	hm.Min = 0
	hm.Max = fullScale

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "column"
	p.Y.Label.Text = "row"
	p.Add(hm)

	rows, cols := g.Dims()
	var yt []plot.Tick
	for r := 0; r < rows; r++ {
		yt = append(yt, plot.Tick{Value: float64(r), Label: strconv.Itoa(rows - 1 - r)})
	}
	var xt []plot.Tick
	for c := 0; c < cols; c++ {
		xt = append(xt, plot.Tick{Value: float64(c), Label: strconv.Itoa(c)})
	}
	p.Y.Tick.Marker = plot.ConstantTicks(yt)
	p.X.Tick.Marker = plot.ConstantTicks(xt)

	return p, nil
}

// WriteHeatmapPlot renders the heat map to path. The format follows the
// file extension (png, svg, pdf, ...).
func WriteHeatmapPlot(path string, g *frame.Grid, fullScale float64) error {
	p, err := HeatmapPlot(g, fullScale, "tactile sensor")
	if err != nil {
		return err
	}

	format := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	if format == "" {
		return fmt.Errorf("export: %s: missing file extension", path)
	}
	wt, err := p.WriterTo(6*vg.Inch, 6*vg.Inch, format)
	if err != nil {
		return fmt.Errorf("export: %w", err)
	}

	return writeAtomic(path, func(w io.Writer) error {
		_, err := wt.WriteTo(w)
		return err
	})
}
