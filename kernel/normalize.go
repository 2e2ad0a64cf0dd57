package kernel

import (
	"fmt"

	"github.com/cwbudde/algo-vecmath"
)

// Normalize rescales m in place so that each of the phases interleaved row
// groups (rows p, p+phases, p+2*phases, ...) sums to 1/phases, preserving
// per-phase DC gain when the kernel is used as a polyphase filter bank.
//
// All phase sums are checked before any row is touched; on error m is left
// unchanged. A phase whose taps sum to exactly zero yields [ErrZeroPhaseSum]
// rather than a silent NaN/Inf kernel. Phases beyond the row count select no
// rows and are skipped.
func Normalize(m Matrix, phases int) error {
	if phases <= 0 {
		return fmt.Errorf("kernel: phases must be > 0: %d: %w", phases, ErrInvalidArgument)
	}
	if len(m) == 0 {
		return fmt.Errorf("kernel: empty kernel: %w", ErrInvalidArgument)
	}

	sums := make([]float64, phases)
	for p := 0; p < phases && p < len(m); p++ {
		sum := 0.0
		for i := p; i < len(m); i += phases {
			sum += vecmath.Sum(m[i])
		}
		if sum == 0 {
			return fmt.Errorf("kernel: phase %d of %d sums to zero: %w", p, phases, ErrZeroPhaseSum)
		}
		sums[p] = sum
	}

	for p := 0; p < phases && p < len(m); p++ {
		scale := 1 / (sums[p] * float64(phases))
		for i := p; i < len(m); i += phases {
			vecmath.ScaleBlockInPlace(m[i], scale)
		}
	}

	return nil
}
