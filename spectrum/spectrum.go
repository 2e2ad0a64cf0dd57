package spectrum

import (
	"errors"
	"fmt"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-kernel2d/kernel"
)

var errNotSquare = errors.New("spectrum: kernel is not square")

// FFT2 returns the 2D complex spectrum of m, computed as a row pass followed
// by a column pass with a shared 1D plan.
func FFT2(m kernel.Matrix) ([][]complex128, error) {
	n := len(m)
	if n == 0 {
		return nil, fmt.Errorf("spectrum: empty kernel")
	}

	for _, row := range m {
		if len(row) != n {
			return nil, errNotSquare
		}
	}

	plan, err := algofft.NewPlan64(n)
	if err != nil {
		return nil, fmt.Errorf("spectrum: fft plan for n=%d: %w", n, err)
	}

	out := make([][]complex128, n)
	row := make([]complex128, n)
	for i := range m {
		for j, v := range m[i] {
			row[j] = complex(v, 0)
		}

		out[i] = make([]complex128, n)
		if err := plan.Forward(out[i], row); err != nil {
			return nil, fmt.Errorf("spectrum: row fft: %w", err)
		}
	}

	col := make([]complex128, n)
	tmp := make([]complex128, n)
	for j := 0; j < n; j++ {
		for i := 0; i < n; i++ {
			col[i] = out[i][j]
		}

		if err := plan.Forward(tmp, col); err != nil {
			return nil, fmt.Errorf("spectrum: column fft: %w", err)
		}

		for i := 0; i < n; i++ {
			out[i][j] = tmp[i]
		}
	}

	return out, nil
}

// Magnitude2D returns |FFT2(m)| per bin.
func Magnitude2D(m kernel.Matrix) (kernel.Matrix, error) {
	bins, err := FFT2(m)
	if err != nil {
		return nil, err
	}

	n := len(bins)
	out := make(kernel.Matrix, n)
	re := make([]float64, n)
	im := make([]float64, n)
	for i, row := range bins {
		for j, c := range row {
			re[j] = real(c)
			im[j] = imag(c)
		}

		out[i] = make([]float64, n)
		vecmath.Magnitude(out[i], re, im)
	}

	return out, nil
}

// CenteredMagnitude returns Shift(|FFT2(InverseShift(m))|): the magnitude
// response of a spatially centered kernel with the zero-frequency bin moved
// to the center for display.
func CenteredMagnitude(m kernel.Matrix) (kernel.Matrix, error) {
	mag, err := Magnitude2D(InverseShift(m))
	if err != nil {
		return nil, err
	}

	return Shift(mag), nil
}
