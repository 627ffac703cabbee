// internal/frame/frame_test.go
package frame

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func seq(n, step int) []uint16 {
	out := make([]uint16, n)
	for i := range out {
		out[i] = uint16(i * step)
	}
	return out
}

func TestReshape_RowMajorRoundTrip(t *testing.T) {
	g, err := Reshape(seq(80, 1), 10, 8)
	if err != nil {
		t.Fatalf("Reshape err=%v", err)
	}

	want := make([]int, 80)
	for i := range want {
		want[i] = i
	}
	if diff := cmp.Diff(want, g.Values()); diff != "" {
		t.Fatalf("row-major mismatch (-want +got):\n%s", diff)
	}

	if g.At(1, 0) != 8 || g.At(9, 7) != 79 {
		t.Fatalf("unexpected cells: (1,0)=%v (9,7)=%v", g.At(1, 0), g.At(9, 7))
	}
	rows, cols := g.Dims()
	if rows != 10 || cols != 8 {
		t.Fatalf("dims=%dx%d", rows, cols)
	}
}

func TestReshape_ShapeMismatch(t *testing.T) {
	for _, n := range []int{0, 79, 81, 96} {
		if _, err := Reshape(seq(n, 1), 10, 8); !errors.Is(err, ErrShapeMismatch) {
			t.Fatalf("len=%d: expected ErrShapeMismatch, got %v", n, err)
		}
	}
	if _, err := Reshape(seq(80, 1), 0, 8); !errors.Is(err, ErrShapeMismatch) {
		t.Fatalf("expected ErrShapeMismatch for zero rows, got %v", err)
	}
}

func TestRed_Endpoints(t *testing.T) {
	if got := Red(0, DefaultFullScale); got != 0 {
		t.Fatalf("Red(0)=%d", got)
	}
	if got := Red(2000, DefaultFullScale); got != 255 {
		t.Fatalf("Red(2000)=%d", got)
	}
	if got := Red(1000, DefaultFullScale); got != 128 {
		t.Fatalf("Red(1000)=%d want 128", got)
	}
}

func TestRed_Monotonic(t *testing.T) {
	prev := Red(0, DefaultFullScale)
	for v := 1; v <= 2000; v++ {
		cur := Red(float64(v), DefaultFullScale)
		if cur < prev {
			t.Fatalf("not monotonic at %d: %d < %d", v, cur, prev)
		}
		prev = cur
	}
}

func TestRed_ClampsOutOfRange(t *testing.T) {
	if got := Red(7900, DefaultFullScale); got != 255 {
		t.Fatalf("Red(7900)=%d want 255", got)
	}
	if got := Red(65535, DefaultFullScale); got != 255 {
		t.Fatalf("Red(65535)=%d want 255", got)
	}
	if got := Red(-5, DefaultFullScale); got != 0 {
		t.Fatalf("Red(-5)=%d want 0", got)
	}
	if got := Red(math.NaN(), DefaultFullScale); got != 0 {
		t.Fatalf("Red(NaN)=%d want 0", got)
	}
}

func TestToImage_EndToEnd(t *testing.T) {
	g, err := Reshape(seq(80, 100), 10, 8)
	if err != nil {
		t.Fatalf("Reshape err=%v", err)
	}
	img := ToImage(g, DefaultFullScale)

	b := img.Bounds()
	if b.Dx() != 8 || b.Dy() != 10 {
		t.Fatalf("image bounds %v, want 8x10", b)
	}

	first := img.RGBAAt(0, 0)
	if first.R != 0 || first.G != 0 || first.B != 0 {
		t.Fatalf("cell (0,0)=%v", first)
	}

	// cell (9,7) holds 7900, above the nominal ceiling
	last := img.RGBAAt(7, 9)
	want := uint8(math.Min(math.Round(7900.0/2000.0*255), 255))
	if last.R != want || last.G != 0 || last.B != 0 {
		t.Fatalf("cell (9,7)=%v want R=%d", last, want)
	}

	// cell (1,2) holds 1000
	if got := img.RGBAAt(2, 1).R; got != 128 {
		t.Fatalf("cell (1,2) R=%d want 128", got)
	}
}

func TestEnlarge_NearestNeighbourBlocks(t *testing.T) {
	g, _ := Reshape(seq(80, 25), 10, 8)
	img := ToImage(g, DefaultFullScale)
	big := Enlarge(img, 5)

	if big.Bounds().Dx() != 40 || big.Bounds().Dy() != 50 {
		t.Fatalf("enlarged bounds %v", big.Bounds())
	}
	for _, p := range [][2]int{{0, 0}, {3, 4}, {7, 9}} {
		c, r := p[0], p[1]
		want := img.RGBAAt(c, r)
		for dy := 0; dy < 5; dy++ {
			for dx := 0; dx < 5; dx++ {
				if got := big.RGBAAt(c*5+dx, r*5+dy); got != want {
					t.Fatalf("block (%d,%d) pixel (%d,%d)=%v want %v", r, c, dx, dy, got, want)
				}
			}
		}
	}
}

func TestGrid_MaxAndString(t *testing.T) {
	g, _ := Reshape(seq(80, 10), 10, 8)
	if g.Max() != 790 {
		t.Fatalf("Max=%v", g.Max())
	}
	if g.String() == "" {
		t.Fatalf("empty String()")
	}
}
