package common

// Screen is the fixed logical resolution; every scene draws in these
// coordinates and ebiten scales to the window.
const (
	BaseWidth  = 800
	BaseHeight = 600
)

func Lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
