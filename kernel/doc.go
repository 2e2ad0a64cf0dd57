// Package kernel computes discrete 2D resampling and interpolation filter
// kernels on a regular grid.
//
// Supported families:
//
//   - [TypeSinc]:         cardinal sine
//   - [TypeLanczos]:      sinc windowed by a stretched sinc, half-width a
//   - [TypeBicubic]:      Keys two-piece cubic with free parameter a
//   - [TypeCubicBSpline]: cubic B-spline
//   - [TypeGaussian]:     isotropic 2D Gaussian
//
// The grid spans [-width/2, +width/2] with width*samplesPerUnit+1 samples per
// axis. The four separable families build the NxN kernel as the outer product
// of a 1D profile with itself; the Gaussian is evaluated directly on the 2D
// grid from its radial distance. [Normalize] rescales a kernel so that each
// of its interleaved polyphase row groups keeps unit DC gain, which is the
// form needed when the kernel feeds a polyphase resampler.
//
// All functions are pure: no logging, no shared state, one fresh allocation
// per call. Concurrent calls are safe.
package kernel
