package wide

// U16x16 is 16 uint16 lanes for SIMD-style element-wise operations.
// Fixed-size arrays with simple loops give the Go compiler a chance to
// auto-vectorize.
type U16x16 [16]uint16

// Splat returns a vector with every lane set to n.
func Splat(n uint16) U16x16 {
	var v U16x16
	for i := range v {
		v[i] = n
	}
	return v
}

// Add performs lane-wise addition without overflow checks; callers
// clamp afterwards when lanes may exceed 255.
func (v U16x16) Add(other U16x16) U16x16 {
	var out U16x16
	for i := range v {
		out[i] = v[i] + other[i]
	}
	return out
}

// Inv computes 255 - v per lane (one minus alpha in 8-bit space).
func (v U16x16) Inv() U16x16 {
	var out U16x16
	for i := range v {
		out[i] = 255 - v[i]
	}
	return out
}

// MulDiv255 computes v * other / 255 per lane with exact rounding for
// products of 8-bit values, using (x + 1 + (x >> 8)) >> 8.
func (v U16x16) MulDiv255(other U16x16) U16x16 {
	var out U16x16
	for i := range v {
		x := uint32(v[i]) * uint32(other[i])
		out[i] = uint16((x + 1 + (x >> 8)) >> 8)
	}
	return out
}

// Clamp limits every lane to at most maxVal.
func (v U16x16) Clamp(maxVal uint16) U16x16 {
	var out U16x16
	for i := range v {
		if v[i] > maxVal {
			out[i] = maxVal
		} else {
			out[i] = v[i]
		}
	}
	return out
}
