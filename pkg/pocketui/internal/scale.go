package internal

// referenceHeight is the logical resolution all spacing constants are tuned for.
const referenceHeight = 768

// GetScaleFactor returns the ratio between the actual window height and the
// reference height. Spacing and font sizes multiply by this so the shell
// renders proportionally on 480p handhelds and 1080p tablets alike.
func GetScaleFactor() float32 {
	if window == nil {
		return 1.0
	}
	h := window.GetHeight()
	if h <= 0 {
		return 1.0
	}
	return float32(h) / float32(referenceHeight)
}

// Min32 returns the smaller of two int32 values.
func Min32(a, b int32) int32 {
	if a < b {
		return a
	}
	return b
}

// Clamp32 limits v to the closed range [lo, hi].
func Clamp32(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
