package kernel_test

import (
	"fmt"

	"github.com/cwbudde/algo-kernel2d/kernel"
)

func ExampleSinc() {
	m, _ := kernel.Sinc(2, 2)
	fmt.Printf("n=%d center=%.0f corner=%.4f\n", m.N(), m[2][2], m[0][0])
	// Output:
	// n=5 center=1 corner=0.0000
}

func ExampleLanczos() {
	m, _ := kernel.Lanczos(4, 2, 2, kernel.WithNormalize())
	a := kernel.Analyze(m, 2)
	fmt.Printf("n=%d phase0=%.4f phase1=%.4f\n", m.N(), a.PhaseSums[0], a.PhaseSums[1])
	// Output:
	// n=9 phase0=0.5000 phase1=0.5000
}

func ExampleDescribe() {
	fmt.Println(kernel.Describe(kernel.TypeGaussian, 2, 2, kernel.WithSigma(1)))
	// Output:
	// Gaussian sigma=1 ([-1, 1], 5x5)
}
