package kernel

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrInvalidArgument reports a rejected generation parameter.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrZeroPhaseSum reports a normalization phase whose taps sum to zero.
	ErrZeroPhaseSum = errors.New("phase sum is zero")
)

func validateGrid(width, samplesPerUnit int) error {
	if width <= 0 {
		return fmt.Errorf("kernel: width must be > 0: %d: %w", width, ErrInvalidArgument)
	}
	if samplesPerUnit <= 0 {
		return fmt.Errorf("kernel: samples per unit must be > 0: %d: %w", samplesPerUnit, ErrInvalidArgument)
	}
	return nil
}

func validateLanczosA(a float64) error {
	if a < 1 || a != math.Trunc(a) {
		return fmt.Errorf("kernel: lanczos a must be a positive integer: %v: %w", a, ErrInvalidArgument)
	}
	return nil
}

func validateSigma(sigma float64) error {
	if !(sigma > 0) {
		return fmt.Errorf("kernel: gaussian sigma must be > 0: %v: %w", sigma, ErrInvalidArgument)
	}
	return nil
}
