// Package render draws 2D kernels and their frequency responses as
// grayscale heatmap images for visual inspection. [Panel] lays out the
// kernel, its FFT magnitude and the zero-centered FFT magnitude side by
// side with a text label, the static counterpart of the original
// interactive filter plot.
package render
