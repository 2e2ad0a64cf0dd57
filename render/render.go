package render

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"math"
	"os"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/cwbudde/algo-kernel2d/kernel"
	"github.com/cwbudde/algo-kernel2d/spectrum"
)

const (
	tileTarget  = 128
	panelPad    = 4
	labelHeight = 18
)

// Heatmap renders m as a min/max normalized grayscale image, upscaled by
// the given integer factor with Catmull-Rom resampling. A flat kernel maps
// to black.
func Heatmap(m kernel.Matrix, scale int) *image.Gray16 {
	n := len(m)
	base := image.NewGray16(image.Rect(0, 0, n, n))

	lo, hi := bounds(m)
	span := hi - lo
	for i, row := range m {
		for j, v := range row {
			g := 0.0
			if span > 0 {
				g = (v - lo) / span
			}
			base.SetGray16(j, i, color.Gray16{Y: uint16(math.Round(g * 65535))})
		}
	}

	if scale <= 1 || n == 0 {
		return base
	}

	dst := image.NewGray16(image.Rect(0, 0, n*scale, n*scale))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), base, base.Bounds(), xdraw.Src, nil)

	return dst
}

// Panel renders the kernel, its FFT magnitude and the zero-centered FFT
// magnitude side by side under a text label.
func Panel(m kernel.Matrix, label string) (image.Image, error) {
	n := len(m)
	if n == 0 {
		return nil, fmt.Errorf("render: empty kernel")
	}

	mag, err := spectrum.Magnitude2D(spectrum.InverseShift(m))
	if err != nil {
		return nil, err
	}
	centered := spectrum.Shift(mag)

	scale := (tileTarget + n - 1) / n
	if scale < 1 {
		scale = 1
	}

	tiles := []*image.Gray16{
		Heatmap(m, scale),
		Heatmap(mag, scale),
		Heatmap(centered, scale),
	}

	tile := n * scale
	width := 3*tile + 4*panelPad
	height := tile + labelHeight + 2*panelPad

	out := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(out, out.Bounds(), image.White, image.Point{}, draw.Src)

	for i, t := range tiles {
		x := panelPad + i*(tile+panelPad)
		r := image.Rect(x, labelHeight+panelPad, x+tile, labelHeight+panelPad+tile)
		draw.Draw(out, r, t, image.Point{}, draw.Src)
	}

	d := font.Drawer{
		Dst:  out,
		Src:  image.Black,
		Face: basicfont.Face7x13,
		Dot:  fixed.P(panelPad, labelHeight-panelPad),
	}
	d.DrawString(label)

	return out, nil
}

// WritePNG encodes img to path.
func WritePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	if err := png.Encode(f, img); err != nil {
		f.Close()
		return err
	}

	return f.Close()
}

func bounds(m kernel.Matrix) (lo, hi float64) {
	first := true
	for _, row := range m {
		for _, v := range row {
			if first {
				lo, hi = v, v
				first = false
				continue
			}
			if v < lo {
				lo = v
			}
			if v > hi {
				hi = v
			}
		}
	}
	return lo, hi
}
