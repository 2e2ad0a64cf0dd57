package spectrum

import (
	"github.com/cwbudde/algo-kernel2d/kernel"
)

// Shift returns m circularly rolled by floor(n/2) along both axes, moving
// the zero-frequency bin of a spectrum to the center.
func Shift(m kernel.Matrix) kernel.Matrix {
	return roll(m, func(n int) int { return n / 2 })
}

// InverseShift undoes [Shift], rolling by ceil(n/2) along both axes. For a
// spatially centered kernel this moves the center tap to index (0,0).
func InverseShift(m kernel.Matrix) kernel.Matrix {
	return roll(m, func(n int) int { return (n + 1) / 2 })
}

func roll(m kernel.Matrix, offset func(int) int) kernel.Matrix {
	rows := len(m)
	out := make(kernel.Matrix, rows)
	if rows == 0 {
		return out
	}

	di := offset(rows)
	for i, row := range m {
		cols := len(row)
		dst := make([]float64, cols)
		dj := offset(cols)
		for j, v := range row {
			dst[(j+dj)%cols] = v
		}
		out[(i+di)%rows] = dst
	}

	return out
}
