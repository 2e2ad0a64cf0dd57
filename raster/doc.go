// Package raster persists 2D kernels as single-band floating-point TIFF
// rasters: little-endian, uncompressed, 64-bit IEEE samples in one strip.
// Kernels need the full float64 range, which rules out the integer-only
// encoders in the image ecosystem, so the baseline TIFF structure is written
// directly. [Read] decodes exactly the layout [Write] produces.
package raster
