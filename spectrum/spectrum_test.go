package spectrum

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-kernel2d/kernel"
)

func almostEqual(a, b, eps float64) bool {
	return math.Abs(a-b) <= eps
}

func constantMatrix(n int, v float64) kernel.Matrix {
	m := make(kernel.Matrix, n)
	for i := range m {
		m[i] = make([]float64, n)
		for j := range m[i] {
			m[i][j] = v
		}
	}
	return m
}

func TestFFT2Impulse(t *testing.T) {
	m := constantMatrix(8, 0)
	m[0][0] = 1

	bins, err := FFT2(m)
	if err != nil {
		t.Fatal(err)
	}

	// An impulse at the origin transforms to a flat spectrum of ones.
	for i := range bins {
		for j, c := range bins[i] {
			if !almostEqual(real(c), 1, 1e-9) || !almostEqual(imag(c), 0, 1e-9) {
				t.Fatalf("bin[%d][%d]=%v, want 1+0i", i, j, c)
			}
		}
	}
}

func TestFFT2Constant(t *testing.T) {
	const n = 8

	bins, err := FFT2(constantMatrix(n, 1))
	if err != nil {
		t.Fatal(err)
	}

	if !almostEqual(real(bins[0][0]), n*n, 1e-6) {
		t.Fatalf("dc bin=%v, want %d", bins[0][0], n*n)
	}

	for i := range bins {
		for j, c := range bins[i] {
			if i == 0 && j == 0 {
				continue
			}
			if !almostEqual(real(c), 0, 1e-6) || !almostEqual(imag(c), 0, 1e-6) {
				t.Fatalf("bin[%d][%d]=%v, want 0", i, j, c)
			}
		}
	}
}

func TestMagnitude2DCenteredImpulse(t *testing.T) {
	const n = 8

	m := constantMatrix(n, 0)
	m[n/2][n/2] = 1

	// InverseShift moves the centered impulse to the origin, so the
	// magnitude is flat.
	mag, err := Magnitude2D(InverseShift(m))
	if err != nil {
		t.Fatal(err)
	}

	for i := range mag {
		for j, v := range mag[i] {
			if !almostEqual(v, 1, 1e-9) {
				t.Fatalf("mag[%d][%d]=%v, want 1", i, j, v)
			}
		}
	}
}

func TestCenteredMagnitude(t *testing.T) {
	const n = 8

	m := constantMatrix(n, 0)
	m[n/2][n/2] = 1

	mag, err := CenteredMagnitude(m)
	if err != nil {
		t.Fatal(err)
	}

	if len(mag) != n {
		t.Fatalf("n=%d, want %d", len(mag), n)
	}

	for i := range mag {
		for j, v := range mag[i] {
			if !almostEqual(v, 1, 1e-9) {
				t.Fatalf("mag[%d][%d]=%v, want 1", i, j, v)
			}
		}
	}
}

func TestFFT2Errors(t *testing.T) {
	if _, err := FFT2(kernel.Matrix{}); err == nil {
		t.Fatal("expected error for empty kernel")
	}

	ragged := kernel.Matrix{{1, 2}, {3}}
	if _, err := FFT2(ragged); err == nil {
		t.Fatal("expected error for non-square kernel")
	}
}
