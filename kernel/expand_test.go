package kernel

import "testing"

func TestOuterProduct(t *testing.T) {
	profile := []float64{0.5, -1, 2, 3}

	m := Outer(profile)
	if m.N() != len(profile) {
		t.Fatalf("n=%d, want %d", m.N(), len(profile))
	}

	for i := range m {
		for j := range m[i] {
			want := profile[i] * profile[j]
			if m[i][j] != want {
				t.Fatalf("m[%d][%d]=%v, want %v", i, j, m[i][j], want)
			}
		}
	}
}

func TestOuterSymmetryAndDiagonal(t *testing.T) {
	profile := []float64{0.1, 0.7, -0.3, 1.5, 0.9}

	m := Outer(profile)
	for i := range m {
		if m[i][i] != profile[i]*profile[i] {
			t.Fatalf("diagonal[%d]=%v, want %v", i, m[i][i], profile[i]*profile[i])
		}

		for j := range m[i] {
			if m[i][j] != m[j][i] {
				t.Fatalf("m[%d][%d]=%v != m[%d][%d]=%v", i, j, m[i][j], j, i, m[j][i])
			}
		}
	}
}

func TestOuterEmpty(t *testing.T) {
	if m := Outer(nil); m.N() != 0 {
		t.Fatalf("n=%d, want 0", m.N())
	}
}
