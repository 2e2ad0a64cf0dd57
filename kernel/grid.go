package kernel

// Grid returns width*samplesPerUnit+1 evenly spaced coordinates from
// -width/2 to +width/2, both endpoints included exactly.
//
// The sequence is built mirrored so that coords[i] == -coords[n-1-i] holds
// bit-exactly and the center sample of an odd-length grid is exactly zero.
func Grid(width, samplesPerUnit int) ([]float64, error) {
	if err := validateGrid(width, samplesPerUnit); err != nil {
		return nil, err
	}

	n := width*samplesPerUnit + 1
	last := n - 1
	half := float64(width) / 2
	step := float64(width) / float64(last)

	coords := make([]float64, n)
	for i := 0; i < n/2; i++ {
		v := -half + float64(i)*step
		coords[i] = v
		coords[last-i] = -v
	}
	if n%2 == 1 {
		coords[n/2] = 0
	}

	return coords, nil
}
