package kernel

import (
	"errors"
	"testing"
)

func TestGridLengthAndEndpoints(t *testing.T) {
	cases := []struct {
		width, spu int
	}{
		{1, 1},
		{2, 2},
		{4, 2},
		{3, 5},
		{10, 7},
	}

	for _, tc := range cases {
		coords, err := Grid(tc.width, tc.spu)
		if err != nil {
			t.Fatalf("Grid(%d,%d): %v", tc.width, tc.spu, err)
		}

		want := tc.width*tc.spu + 1
		if len(coords) != want {
			t.Fatalf("Grid(%d,%d) len=%d, want %d", tc.width, tc.spu, len(coords), want)
		}

		half := float64(tc.width) / 2
		if coords[0] != -half || coords[len(coords)-1] != half {
			t.Fatalf("Grid(%d,%d) endpoints=[%v,%v], want [%v,%v]",
				tc.width, tc.spu, coords[0], coords[len(coords)-1], -half, half)
		}
	}
}

func TestGridSymmetry(t *testing.T) {
	coords, err := Grid(5, 3)
	if err != nil {
		t.Fatal(err)
	}

	n := len(coords)
	for i := range coords {
		if coords[i] != -coords[n-1-i] {
			t.Fatalf("coords[%d]=%v not mirrored by coords[%d]=%v", i, coords[i], n-1-i, coords[n-1-i])
		}
	}
}

func TestGridCenterZero(t *testing.T) {
	coords, err := Grid(4, 2)
	if err != nil {
		t.Fatal(err)
	}

	if n := len(coords); n%2 != 1 {
		t.Fatalf("expected odd length, got %d", n)
	}

	if c := coords[len(coords)/2]; c != 0 {
		t.Fatalf("center=%v, want exactly 0", c)
	}
}

func TestGridSpacing(t *testing.T) {
	coords, err := Grid(2, 3)
	if err != nil {
		t.Fatal(err)
	}

	step := 1.0 / 3.0
	for i := 1; i < len(coords); i++ {
		if !almostEqual(coords[i]-coords[i-1], step, 1e-12) {
			t.Fatalf("spacing at %d = %v, want %v", i, coords[i]-coords[i-1], step)
		}
	}
}

func TestGridKnownValues(t *testing.T) {
	coords, err := Grid(2, 2)
	if err != nil {
		t.Fatal(err)
	}

	want := []float64{-1, -0.5, 0, 0.5, 1}
	if len(coords) != len(want) {
		t.Fatalf("len=%d, want %d", len(coords), len(want))
	}

	for i := range want {
		if coords[i] != want[i] {
			t.Fatalf("coords[%d]=%v, want %v", i, coords[i], want[i])
		}
	}
}

func TestGridInvalidArguments(t *testing.T) {
	cases := []struct {
		width, spu int
	}{
		{0, 1},
		{-1, 1},
		{1, 0},
		{1, -2},
	}

	for _, tc := range cases {
		if _, err := Grid(tc.width, tc.spu); !errors.Is(err, ErrInvalidArgument) {
			t.Fatalf("Grid(%d,%d) err=%v, want ErrInvalidArgument", tc.width, tc.spu, err)
		}
	}
}
