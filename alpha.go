package pix

// Alpha selects how color channels relate to the alpha channel within
// a Format.
type Alpha uint8

const (
	// AlphaOpaque formats carry no alpha channel; every pixel behaves
	// as fully opaque.
	AlphaOpaque Alpha = iota

	// AlphaStraight formats store color channels independent of alpha.
	AlphaStraight

	// AlphaPremultiplied formats store color channels already scaled
	// by alpha. Required for compositing.
	AlphaPremultiplied
)

func (a Alpha) String() string {
	switch a {
	case AlphaOpaque:
		return "opaque"
	case AlphaStraight:
		return "straight"
	case AlphaPremultiplied:
		return "premultiplied"
	}
	return "unknown"
}

// premultiply scales a color channel by alpha.
func premultiply(c, a float64) float64 {
	return c * a
}

// unpremultiply divides a color channel by alpha. Zero alpha yields
// zero color (transparent black by convention, never a division
// error).
func unpremultiply(c, a float64) float64 {
	if a <= 0 {
		return 0
	}
	v := c / a
	if v > 1 {
		return 1
	}
	return v
}
