// internal/frame/image.go
package frame

import (
	"image"
	"image/color"
	"math"

	"golang.org/x/image/draw"
)

// DefaultFullScale is the nominal ceiling of a tactile cell.
const DefaultFullScale = 2000

// Red maps a raw intensity onto the red channel.
// Values are clamped to [0, fullScale] before scaling.
func Red(v, fullScale float64) uint8 {
	if fullScale <= 0 {
		return 0
	}
	n := v / fullScale
	if n < 0 || math.IsNaN(n) {
		n = 0
	}
	if n > 1 {
		n = 1
	}
	return uint8(math.Round(n * 255))
}

// ToImage renders a grid as a cols x rows image. Only the red channel
// carries data; green and blue are always zero.
func ToImage(g *Grid, fullScale float64) *image.RGBA {
	rows, cols := g.Dims()
	img := image.NewRGBA(image.Rect(0, 0, cols, rows))
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			img.SetRGBA(c, r, color.RGBA{R: Red(g.At(r, c), fullScale), A: 0xFF})
		}
	}
	return img
}

// Enlarge upscales img by an integer factor with nearest-neighbour sampling
// so each cell stays a solid block.
func Enlarge(img image.Image, scale int) *image.RGBA {
	if scale < 1 {
		scale = 1
	}
	b := img.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx()*scale, b.Dy()*scale))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	return dst
}
