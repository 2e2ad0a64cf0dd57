package kernel

import (
	"fmt"
	"math"
)

// Type identifies a kernel family.
type Type int

const (
	TypeSinc Type = iota
	TypeLanczos
	TypeBicubic
	TypeCubicBSpline
	TypeGaussian
)

// Name returns the canonical family name.
func (t Type) Name() string {
	switch t {
	case TypeSinc:
		return "Sinc"
	case TypeLanczos:
		return "Lanczos"
	case TypeBicubic:
		return "Bicubic"
	case TypeCubicBSpline:
		return "Cubic B-Spline"
	case TypeGaussian:
		return "Gaussian"
	default:
		return "Unknown"
	}
}

// Matrix is a square dense 2D kernel.
type Matrix [][]float64

// N returns the edge length.
func (m Matrix) N() int { return len(m) }

// Clone returns a deep copy of m.
func (m Matrix) Clone() Matrix {
	out := make(Matrix, len(m))
	for i, row := range m {
		out[i] = append([]float64(nil), row...)
	}
	return out
}

func newMatrix(n int) Matrix {
	m := make(Matrix, n)
	for i := range m {
		m[i] = make([]float64, n)
	}
	return m
}

// Option configures kernel generation.
type Option func(*config)

type config struct {
	a              float64
	sigma          float64
	normalize      bool
	standardSpline bool
}

func defaultConfig() config {
	return config{
		a:     math.NaN(),
		sigma: 1,
	}
}

// WithA sets the Lanczos half-width or the bicubic a parameter.
func WithA(a float64) Option {
	return func(c *config) {
		c.a = a
	}
}

// WithSigma sets the Gaussian standard deviation.
func WithSigma(sigma float64) Option {
	return func(c *config) {
		c.sigma = sigma
	}
}

// WithNormalize enables per-phase normalization with phases = samplesPerUnit.
func WithNormalize() Option {
	return func(c *config) {
		c.normalize = true
	}
}

// WithStandardBSpline selects the textbook (2-|x|)^3/6 far branch of the
// cubic B-spline instead of the legacy (2-|x|^3)/6 form.
func WithStandardBSpline() Option {
	return func(c *config) {
		c.standardSpline = true
	}
}

func (c config) lanczosA() float64 {
	if math.IsNaN(c.a) {
		return 2
	}
	return c.a
}

func (c config) bicubicA() float64 {
	if math.IsNaN(c.a) {
		return -0.5
	}
	return c.a
}

// Generate returns the 2D kernel for family t sampled on the grid
// [-width/2, +width/2] with width*samplesPerUnit+1 points per axis.
func Generate(t Type, width, samplesPerUnit int, opts ...Option) (Matrix, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	coords, err := Grid(width, samplesPerUnit)
	if err != nil {
		return nil, err
	}

	var m Matrix
	if t == TypeGaussian {
		m, err = gaussian2D(coords, cfg.sigma)
	} else {
		var profile []float64
		profile, err = profileFor(t, coords, cfg)
		if err == nil {
			m = Outer(profile)
		}
	}
	if err != nil {
		return nil, err
	}

	if cfg.normalize {
		if err := Normalize(m, samplesPerUnit); err != nil {
			return nil, err
		}
	}

	return m, nil
}

// Sinc returns the separable 2D cardinal sine kernel.
func Sinc(width, samplesPerUnit int, opts ...Option) (Matrix, error) {
	return Generate(TypeSinc, width, samplesPerUnit, opts...)
}

// Lanczos returns the separable 2D Lanczos kernel with half-width a.
func Lanczos(width, samplesPerUnit, a int, opts ...Option) (Matrix, error) {
	return Generate(TypeLanczos, width, samplesPerUnit, append(opts, WithA(float64(a)))...)
}

// Bicubic returns the separable 2D Keys cubic kernel with parameter a.
func Bicubic(width, samplesPerUnit int, a float64, opts ...Option) (Matrix, error) {
	return Generate(TypeBicubic, width, samplesPerUnit, append(opts, WithA(a))...)
}

// CubicBSpline returns the separable 2D cubic B-spline kernel.
func CubicBSpline(width, samplesPerUnit int, opts ...Option) (Matrix, error) {
	return Generate(TypeCubicBSpline, width, samplesPerUnit, opts...)
}

// Gaussian returns the isotropic 2D Gaussian kernel with the given sigma.
func Gaussian(width, samplesPerUnit int, sigma float64, opts ...Option) (Matrix, error) {
	return Generate(TypeGaussian, width, samplesPerUnit, append(opts, WithSigma(sigma))...)
}

// gaussian2D evaluates the isotropic 2D Gaussian directly on the grid.
// The leading factor normalizes the continuous density, not the discrete sum.
func gaussian2D(coords []float64, sigma float64) (Matrix, error) {
	if err := validateSigma(sigma); err != nil {
		return nil, err
	}

	m := newMatrix(len(coords))
	sigma2 := sigma * sigma
	factor := 1 / (2 * math.Pi * sigma2)
	for i, x := range coords {
		row := m[i]
		for j, y := range coords {
			row[j] = factor * math.Exp(-(x*x+y*y)/(2*sigma2))
		}
	}

	return m, nil
}

// Describe returns a short human-readable label for a kernel request,
// for example "Lanczos a=2 ([-2, 2], 9x9)".
func Describe(t Type, width, samplesPerUnit int, opts ...Option) string {
	cfg := defaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	n := width*samplesPerUnit + 1
	half := float64(width) / 2
	span := fmt.Sprintf("([%g, %g], %dx%d)", -half, half, n, n)

	switch t {
	case TypeLanczos:
		return fmt.Sprintf("%s a=%g %s", t.Name(), cfg.lanczosA(), span)
	case TypeBicubic:
		return fmt.Sprintf("%s a=%g %s", t.Name(), cfg.bicubicA(), span)
	case TypeGaussian:
		return fmt.Sprintf("%s sigma=%g %s", t.Name(), cfg.sigma, span)
	default:
		return fmt.Sprintf("%s %s", t.Name(), span)
	}
}
