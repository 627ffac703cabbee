// internal/display/render.go
package display

import (
	"fmt"
	"image"
	"image/color"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// CellWidth maps the configured enlargement factor onto terminal columns.
// A terminal cell is roughly twice as tall as wide, so the minimum is 2.
func CellWidth(scale int) int {
	w := scale / 25
	if w < 2 {
		w = 2
	}
	return w
}

// CellColor is the hex background for one pixel of the display frame.
func CellColor(c color.Color) string {
	r, g, b, _ := c.RGBA()
	return fmt.Sprintf("#%02X%02X%02X", r>>8, g>>8, b>>8)
}

// RenderHeatmap draws img one pixel per cell, top row first.
func RenderHeatmap(img image.Image, cellWidth int) string {
	if img == nil {
		return ""
	}
	if cellWidth < 1 {
		cellWidth = 1
	}

	pad := strings.Repeat(" ", cellWidth)
	b := img.Bounds()
	lines := make([]string, 0, b.Dy())

	for y := b.Min.Y; y < b.Max.Y; y++ {
		var row strings.Builder
		for x := b.Min.X; x < b.Max.X; x++ {
			style := lipgloss.NewStyle().Background(lipgloss.Color(CellColor(img.At(x, y))))
			row.WriteString(style.Render(pad))
		}
		lines = append(lines, row.String())
	}
	return strings.Join(lines, "\n")
}
