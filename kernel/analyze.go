package kernel

import (
	"github.com/cwbudde/algo-vecmath"
)

// Analysis holds numerically computed summary properties of a 2D kernel.
type Analysis struct {
	// N is the kernel edge length.
	N int
	// Center is the middle tap value for odd N, zero otherwise.
	Center float64
	// Sum is the total tap sum (2D DC gain).
	Sum float64
	// Min and Max are the extreme tap values.
	Min float64
	Max float64
	// PhaseSums are the interleaved row-group sums used by Normalize,
	// one per phase. After Normalize each equals 1/phases.
	PhaseSums []float64
}

// Analyze computes summary properties of m for the given phase count.
// Pass phases = 1 for a plain global sum.
func Analyze(m Matrix, phases int) Analysis {
	if len(m) == 0 {
		return Analysis{}
	}
	if phases <= 0 {
		phases = 1
	}

	a := Analysis{
		N:         len(m),
		Min:       m[0][0],
		Max:       m[0][0],
		PhaseSums: make([]float64, phases),
	}

	for i, row := range m {
		rowSum := vecmath.Sum(row)
		a.Sum += rowSum
		a.PhaseSums[i%phases] += rowSum

		for _, v := range row {
			if v < a.Min {
				a.Min = v
			}
			if v > a.Max {
				a.Max = v
			}
		}
	}

	if a.N%2 == 1 {
		a.Center = m[a.N/2][a.N/2]
	}

	return a
}
