package pix

import "math"

// Gamma selects the transfer curve between stored channel values and
// linear light intensity. It is fixed per Format: a raster keeps one
// gamma mode for its whole lifetime.
type Gamma uint8

const (
	// GammaLinear stores channel values proportional to light
	// intensity. Required for compositing.
	GammaLinear Gamma = iota

	// GammaSRGB stores channel values encoded with the sRGB piecewise
	// transfer curve. Used for display and storage formats.
	GammaSRGB
)

func (g Gamma) String() string {
	switch g {
	case GammaLinear:
		return "linear"
	case GammaSRGB:
		return "sRGB"
	}
	return "unknown"
}

// ToLinear decodes a stored unit value to linear intensity. Identity
// for GammaLinear.
func (g Gamma) ToLinear(v float64) float64 {
	if g == GammaSRGB {
		return srgbDecode(v)
	}
	return v
}

// FromLinear encodes a linear intensity to the stored encoding.
// Identity for GammaLinear.
func (g Gamma) FromLinear(v float64) float64 {
	if g == GammaSRGB {
		return srgbEncode(v)
	}
	return v
}

// srgbEncode converts linear intensity to the sRGB encoding (the OETF:
// linear segment near zero, power law elsewhere). Inputs outside
// [0, 1] clamp to the range.
func srgbEncode(v float64) float64 {
	switch {
	case v <= 0:
		return 0
	case v < 0.0031308:
		return v * 12.92
	case v < 1:
		return math.Pow(v, 1/2.4)*1.055 - 0.055
	default:
		return 1
	}
}

// srgbDecode converts an sRGB-encoded value to linear intensity (the
// EOTF). Exact inverse of srgbEncode up to floating rounding.
func srgbDecode(v float64) float64 {
	switch {
	case v <= 0:
		return 0
	case v < 0.04045:
		return v / 12.92
	case v < 1:
		return math.Pow((v+0.055)/1.055, 2.4)
	default:
		return 1
	}
}

// Lookup tables for the 8-bit transfer, filled at init. Values equal
// round(curve(i/255) * 255) for each i.
var (
	encodeSRGB8 [256]Ch8
	decodeSRGB8 [256]Ch8
)

func init() {
	for i := 0; i < 256; i++ {
		s := float64(i) / 255
		encodeSRGB8[i] = Ch8(math.Round(srgbEncode(s) * 255))
		decodeSRGB8[i] = Ch8(math.Round(srgbDecode(s) * 255))
	}
}
