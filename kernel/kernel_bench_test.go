package kernel

import (
	"strconv"
	"testing"
)

func BenchmarkGenerate(b *testing.B) {
	widths := []int{4, 16, 64}
	for _, w := range widths {
		b.Run("sinc/"+strconv.Itoa(w), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				_, _ = Generate(TypeSinc, w, 16)
			}
		})
		b.Run("lanczos/"+strconv.Itoa(w), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				_, _ = Generate(TypeLanczos, w, 16, WithA(3))
			}
		})
		b.Run("gaussian/"+strconv.Itoa(w), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				_, _ = Generate(TypeGaussian, w, 16, WithSigma(1))
			}
		})
	}
}

func BenchmarkNormalize(b *testing.B) {
	m, err := Sinc(64, 16)
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := Normalize(m, 16); err != nil {
			b.Fatal(err)
		}
	}
}
