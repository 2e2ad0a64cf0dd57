package kernel

import (
	"github.com/cwbudde/algo-vecmath"
)

// Outer expands a 1D profile into its separable 2D kernel,
// m[i][j] = profile[i] * profile[j].
func Outer(profile []float64) Matrix {
	m := make(Matrix, len(profile))
	for i, v := range profile {
		m[i] = make([]float64, len(profile))
		vecmath.ScaleBlock(m[i], profile, v)
	}
	return m
}
