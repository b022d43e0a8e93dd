package wave

// Wave is an ordered series of non-negative wave values.
type Wave []float64

// Clone returns an independent copy of w.
func (w Wave) Clone() Wave {
	if w == nil {
		return nil
	}
	out := make(Wave, len(w))
	copy(out, w)

	return out
}

// Scale returns a new wave with every value multiplied by factor.
func (w Wave) Scale(factor float64) Wave {
	out := make(Wave, len(w))
	for i, v := range w {
		out[i] = v * factor
	}

	return out
}

// Summary describes the distribution of a wave.
type Summary struct {
	Len    int
	Min    float64
	Max    float64
	Mean   float64
	StdDev float64 // population standard deviation
}
