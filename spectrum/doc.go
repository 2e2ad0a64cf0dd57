// Package spectrum computes 2D frequency-domain views of resampling kernels.
//
// The usual inspection pipeline is [InverseShift] to move the kernel center
// to the origin, [FFT2] (or [Magnitude2D]) to transform it, and [Shift] to
// re-center the zero-frequency bin for display. [CenteredMagnitude] runs the
// whole pipeline in one call.
package spectrum
