package pix

import "math"

// Ch8 is an 8-bit color channel. The value is stored as a uint8 but
// arithmetic treats it as an intensity between 0 and 1.
type Ch8 uint8

// Ch16 is a 16-bit color channel. The value is stored as a uint16 but
// arithmetic treats it as an intensity between 0 and 1.
type Ch16 uint16

// Ch32 is a 32-bit floating point color channel, always within
// [0, 1]. Construct values with NewCh32 to maintain the invariant.
type Ch32 float32

// NewCh32 creates a Ch32 clamped to [0, 1]. NaN maps to 0.
func NewCh32(v float32) Ch32 {
	if math.IsNaN(float64(v)) || v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return Ch32(v)
}

// Channel bounds.
const (
	Ch8Min  Ch8  = 0
	Ch8Max  Ch8  = 0xFF
	Ch16Min Ch16 = 0
	Ch16Max Ch16 = 0xFFFF
	Ch32Min Ch32 = 0.0
	Ch32Max Ch32 = 1.0
)

// Add returns c + rhs saturated at the maximum intensity.
func (c Ch8) Add(rhs Ch8) Ch8 {
	sum := uint16(c) + uint16(rhs)
	if sum > 0xFF {
		return Ch8Max
	}
	return Ch8(sum)
}

// Sub returns c - rhs saturated at zero.
func (c Ch8) Sub(rhs Ch8) Ch8 {
	if rhs > c {
		return 0
	}
	return c - rhs
}

// Mul returns c * rhs with both values treated as intensities,
// rounded to nearest.
func (c Ch8) Mul(rhs Ch8) Ch8 {
	return Ch8((uint16(c)*uint16(rhs) + 127) / 255)
}

// Div returns c / rhs with both values treated as intensities, clamped
// to the maximum. Division by zero yields zero.
func (c Ch8) Div(rhs Ch8) Ch8 {
	if rhs == 0 {
		return 0
	}
	v := (uint32(c)*255 + uint32(rhs)/2) / uint32(rhs)
	if v > 0xFF {
		return Ch8Max
	}
	return Ch8(v)
}

// WrappingAdd returns c + rhs modulo the channel range. Used for
// circular components such as hue.
func (c Ch8) WrappingAdd(rhs Ch8) Ch8 { return c + rhs }

// WrappingSub returns c - rhs modulo the channel range.
func (c Ch8) WrappingSub(rhs Ch8) Ch8 { return c - rhs }

// ToCh16 widens the channel. Every 8-bit value maps onto the 16-bit
// range exactly (v * 257, the bit-replication scale).
func (c Ch8) ToCh16() Ch16 { return Ch16(c)<<8 | Ch16(c) }

// ToCh32 widens the channel to a unit float.
func (c Ch8) ToCh32() Ch32 { return Ch32(float32(c) / 255) }

// Unit returns the channel as a unit fraction.
func (c Ch8) Unit() float64 { return float64(c) / 255 }

// Add returns c + rhs saturated at the maximum intensity.
func (c Ch16) Add(rhs Ch16) Ch16 {
	sum := uint32(c) + uint32(rhs)
	if sum > 0xFFFF {
		return Ch16Max
	}
	return Ch16(sum)
}

// Sub returns c - rhs saturated at zero.
func (c Ch16) Sub(rhs Ch16) Ch16 {
	if rhs > c {
		return 0
	}
	return c - rhs
}

// Mul returns c * rhs with both values treated as intensities,
// rounded to nearest.
func (c Ch16) Mul(rhs Ch16) Ch16 {
	return Ch16((uint64(c)*uint64(rhs) + 32767) / 65535)
}

// Div returns c / rhs with both values treated as intensities, clamped
// to the maximum. Division by zero yields zero.
func (c Ch16) Div(rhs Ch16) Ch16 {
	if rhs == 0 {
		return 0
	}
	v := (uint64(c)*65535 + uint64(rhs)/2) / uint64(rhs)
	if v > 0xFFFF {
		return Ch16Max
	}
	return Ch16(v)
}

// WrappingAdd returns c + rhs modulo the channel range.
func (c Ch16) WrappingAdd(rhs Ch16) Ch16 { return c + rhs }

// WrappingSub returns c - rhs modulo the channel range.
func (c Ch16) WrappingSub(rhs Ch16) Ch16 { return c - rhs }

// ToCh8 narrows the channel, rounding to nearest. Values produced by
// Ch8.ToCh16 round back to the original exactly.
func (c Ch16) ToCh8() Ch8 {
	return Ch8((uint32(c)*255 + 32767) / 65535)
}

// ToCh32 widens the channel to a unit float.
func (c Ch16) ToCh32() Ch32 { return Ch32(float32(c) / 65535) }

// Unit returns the channel as a unit fraction.
func (c Ch16) Unit() float64 { return float64(c) / 65535 }

// Add returns c + rhs clamped to 1.
func (c Ch32) Add(rhs Ch32) Ch32 { return NewCh32(float32(c) + float32(rhs)) }

// Sub returns c - rhs clamped to 0.
func (c Ch32) Sub(rhs Ch32) Ch32 { return NewCh32(float32(c) - float32(rhs)) }

// Mul returns c * rhs.
func (c Ch32) Mul(rhs Ch32) Ch32 { return NewCh32(float32(c) * float32(rhs)) }

// Div returns c / rhs clamped to 1. Division by zero yields zero.
func (c Ch32) Div(rhs Ch32) Ch32 {
	if rhs <= 0 {
		return 0
	}
	return NewCh32(float32(c) / float32(rhs))
}

// WrappingAdd returns c + rhs wrapped around the unit range.
func (c Ch32) WrappingAdd(rhs Ch32) Ch32 {
	v := float32(c) + float32(rhs)
	if v > 1 {
		v -= 1
	}
	return NewCh32(v)
}

// WrappingSub returns c - rhs wrapped around the unit range.
func (c Ch32) WrappingSub(rhs Ch32) Ch32 {
	v := float32(c) - float32(rhs)
	if v < 0 {
		v += 1
	}
	return NewCh32(v)
}

// ToCh8 narrows to 8 bits, rounding to nearest with ties away from
// zero.
func (c Ch32) ToCh8() Ch8 {
	return Ch8(math.Round(float64(c) * 255))
}

// ToCh16 narrows to 16 bits, rounding to nearest with ties away from
// zero.
func (c Ch32) ToCh16() Ch16 {
	return Ch16(math.Round(float64(c) * 65535))
}

// Unit returns the channel as a unit fraction.
func (c Ch32) Unit() float64 { return float64(c) }

// EncodeSRGB applies the sRGB transfer curve to a linear intensity.
// 8-bit values go through a lookup table.
func (c Ch8) EncodeSRGB() Ch8 { return encodeSRGB8[c] }

// DecodeSRGB converts an sRGB-encoded value to linear intensity.
func (c Ch8) DecodeSRGB() Ch8 { return decodeSRGB8[c] }

// EncodeSRGB applies the sRGB transfer curve to a linear intensity.
func (c Ch16) EncodeSRGB() Ch16 {
	return Ch16(math.Round(srgbEncode(c.Unit()) * 65535))
}

// DecodeSRGB converts an sRGB-encoded value to linear intensity.
func (c Ch16) DecodeSRGB() Ch16 {
	return Ch16(math.Round(srgbDecode(c.Unit()) * 65535))
}

// EncodeSRGB applies the sRGB transfer curve to a linear intensity.
func (c Ch32) EncodeSRGB() Ch32 { return NewCh32(float32(srgbEncode(c.Unit()))) }

// DecodeSRGB converts an sRGB-encoded value to linear intensity.
func (c Ch32) DecodeSRGB() Ch32 { return NewCh32(float32(srgbDecode(c.Unit()))) }
