package kernel

import (
	"fmt"
	"math"
)

// Profile evaluates the 1D profile of a separable family at coords.
//
// TypeGaussian has no 1D profile path; its kernel is evaluated directly on
// the 2D grid by [Generate], and requesting a Gaussian profile is an error.
func Profile(t Type, coords []float64, opts ...Option) ([]float64, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return profileFor(t, coords, cfg)
}

func profileFor(t Type, coords []float64, cfg config) ([]float64, error) {
	switch t {
	case TypeSinc:
		return evalProfile(coords, sinc), nil
	case TypeLanczos:
		a := cfg.lanczosA()
		if err := validateLanczosA(a); err != nil {
			return nil, err
		}
		return evalProfile(coords, func(x float64) float64 { return lanczos(x, a) }), nil
	case TypeBicubic:
		a := cfg.bicubicA()
		return evalProfile(coords, func(x float64) float64 { return bicubic(x, a) }), nil
	case TypeCubicBSpline:
		if cfg.standardSpline {
			return evalProfile(coords, bsplineStandard), nil
		}
		return evalProfile(coords, bsplineLegacy), nil
	default:
		return nil, fmt.Errorf("kernel: family %s has no 1D profile: %w", t.Name(), ErrInvalidArgument)
	}
}

func evalProfile(coords []float64, f func(float64) float64) []float64 {
	out := make([]float64, len(coords))
	for i, x := range coords {
		out[i] = f(x)
	}
	return out
}

// sinc is the normalised cardinal sine with the removable singularity at 0.
func sinc(x float64) float64 {
	if x == 0 {
		return 1
	}

	px := math.Pi * x

	return math.Sin(px) / px
}

// lanczos is sinc(x)*sinc(x/a) restricted to the open support (-a, a).
// The support boundary itself is excluded, so |x| == a yields exactly 0.
func lanczos(x, a float64) float64 {
	if x <= -a || x >= a {
		return 0
	}

	return sinc(x) * sinc(x/a)
}

// bicubic is the Keys two-piece cubic with free parameter a.
func bicubic(x, a float64) float64 {
	ax := math.Abs(x)
	switch {
	case ax <= 1:
		return (a+2)*ax*ax*ax - (a+3)*ax*ax + 1
	case ax <= 2:
		return a*ax*ax*ax - 5*a*ax*ax + 8*a*ax - 4*a
	default:
		return 0
	}
}

// bsplineLegacy uses the (2-|x|^3)/6 far branch. This is not the textbook
// cubic B-spline; it reproduces the historical generator this package
// replaces. Both branches agree at |x| == 1 but the far branch does not
// decay to zero at |x| == 2. See bsplineStandard for the textbook form.
func bsplineLegacy(x float64) float64 {
	ax := math.Abs(x)
	switch {
	case ax < 1:
		return 2.0/3.0 - ax*ax + ax*ax*ax/2
	case ax < 2:
		return (2 - ax*ax*ax) / 6
	default:
		return 0
	}
}

// bsplineStandard uses the textbook (2-|x|)^3/6 far branch, selected with
// [WithStandardBSpline].
func bsplineStandard(x float64) float64 {
	ax := math.Abs(x)
	switch {
	case ax < 1:
		return 2.0/3.0 - ax*ax + ax*ax*ax/2
	case ax < 2:
		d := 2 - ax
		return d * d * d / 6
	default:
		return 0
	}
}
