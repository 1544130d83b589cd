package pix

import (
	"math"
	"testing"
)

func TestCh8ToCh16RoundTrip(t *testing.T) {
	for v := 0; v <= 255; v++ {
		c := Ch8(v)
		wide := c.ToCh16()
		if wide != Ch16(v*257) {
			t.Fatalf("Ch8(%d).ToCh16() = %d, want %d", v, wide, v*257)
		}
		if back := wide.ToCh8(); back != c {
			t.Fatalf("Ch16(%d).ToCh8() = %d, want %d", wide, back, v)
		}
	}
}

func TestCh8ToCh32RoundTrip(t *testing.T) {
	for v := 0; v <= 255; v++ {
		if back := Ch8(v).ToCh32().ToCh8(); back != Ch8(v) {
			t.Fatalf("Ch8(%d) -> Ch32 -> Ch8 = %d", v, back)
		}
	}
}

func TestCh16ToCh32RoundTrip(t *testing.T) {
	for v := 0; v <= 0xFFFF; v++ {
		if back := Ch16(v).ToCh32().ToCh16(); back != Ch16(v) {
			t.Fatalf("Ch16(%d) -> Ch32 -> Ch16 = %d", v, back)
		}
	}
}

func TestCh16ToCh8Rounding(t *testing.T) {
	tests := []struct {
		in   Ch16
		want Ch8
	}{
		{0, 0},
		{128, 0},
		{0x8000, 128},
		{0xFFFF, 255},
		{257, 1},
	}
	for _, tt := range tests {
		if got := tt.in.ToCh8(); got != tt.want {
			t.Errorf("Ch16(%d).ToCh8() = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestCh8Arithmetic(t *testing.T) {
	tests := []struct {
		name string
		got  Ch8
		want Ch8
	}{
		{"add saturates", Ch8(200).Add(100), 255},
		{"add exact", Ch8(100).Add(50), 150},
		{"sub saturates", Ch8(10).Sub(20), 0},
		{"sub exact", Ch8(20).Sub(10), 10},
		{"mul half half", Ch8(128).Mul(128), 64},
		{"mul by max", Ch8(77).Mul(255), 77},
		{"mul by zero", Ch8(77).Mul(0), 0},
		{"div undoes mul", Ch8(64).Div(128), 128},
		{"div by zero", Ch8(77).Div(0), 0},
		{"div clamps", Ch8(200).Div(10), 255},
		{"wrapping add", Ch8(200).WrappingAdd(100), 44},
		{"wrapping sub", Ch8(10).WrappingSub(20), 246},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %d, want %d", tt.got, tt.want)
			}
		})
	}
}

func TestCh16Arithmetic(t *testing.T) {
	tests := []struct {
		name string
		got  Ch16
		want Ch16
	}{
		{"add saturates", Ch16(0xF000).Add(0x2000), 0xFFFF},
		{"sub saturates", Ch16(10).Sub(20), 0},
		{"mul by max", Ch16(12345).Mul(0xFFFF), 12345},
		{"div by zero", Ch16(12345).Div(0), 0},
		{"div clamps", Ch16(0x8000).Div(0x10), 0xFFFF},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %d, want %d", tt.got, tt.want)
			}
		})
	}
}

func TestNewCh32Clamps(t *testing.T) {
	tests := []struct {
		name string
		in   float32
		want Ch32
	}{
		{"nan", float32(math.NaN()), 0},
		{"negative", -0.5, 0},
		{"above one", 1.5, 1},
		{"in range", 0.25, 0.25},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NewCh32(tt.in); got != tt.want {
				t.Errorf("NewCh32(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestCh32Wrapping(t *testing.T) {
	if got := Ch32(0.75).WrappingAdd(0.5); math.Abs(float64(got)-0.25) > 1e-6 {
		t.Errorf("WrappingAdd = %v, want 0.25", got)
	}
	if got := Ch32(0.25).WrappingSub(0.5); math.Abs(float64(got)-0.75) > 1e-6 {
		t.Errorf("WrappingSub = %v, want 0.75", got)
	}
}

func TestCh32Narrowing(t *testing.T) {
	if got := Ch32(0.5).ToCh8(); got != 128 {
		t.Errorf("Ch32(0.5).ToCh8() = %d, want 128", got)
	}
	if got := Ch32(1).ToCh16(); got != 0xFFFF {
		t.Errorf("Ch32(1).ToCh16() = %d, want 65535", got)
	}
}

func TestSRGBLookupMatchesFormula(t *testing.T) {
	for v := 0; v <= 255; v++ {
		wantEnc := Ch8(math.Round(srgbEncode(float64(v)/255) * 255))
		if got := Ch8(v).EncodeSRGB(); got != wantEnc {
			t.Fatalf("Ch8(%d).EncodeSRGB() = %d, want %d", v, got, wantEnc)
		}
		wantDec := Ch8(math.Round(srgbDecode(float64(v)/255) * 255))
		if got := Ch8(v).DecodeSRGB(); got != wantDec {
			t.Fatalf("Ch8(%d).DecodeSRGB() = %d, want %d", v, got, wantDec)
		}
	}
}

// Encoding a linear value and decoding it back loses at most one
// quantum at 8 bits; the endpoints are exact.
func TestSRGBRoundTrip8(t *testing.T) {
	for v := 0; v <= 255; v++ {
		back := Ch8(v).EncodeSRGB().DecodeSRGB()
		if diff := int(back) - v; diff < -1 || diff > 1 {
			t.Fatalf("decode(encode(%d)) = %d, off by %d", v, back, diff)
		}
	}
	if got := Ch8(0).EncodeSRGB(); got != 0 {
		t.Errorf("encode(0) = %d, want 0", got)
	}
	if got := Ch8(255).EncodeSRGB(); got != 255 {
		t.Errorf("encode(255) = %d, want 255", got)
	}
}

func TestSRGBTransferShape(t *testing.T) {
	// Encoding brightens everything strictly inside the unit range.
	for _, v := range []float64{0.01, 0.18, 0.5, 0.9} {
		if srgbEncode(v) <= v {
			t.Errorf("srgbEncode(%v) = %v, want > %v", v, srgbEncode(v), v)
		}
	}
	// Out-of-range inputs clamp.
	if got := srgbEncode(-0.5); got != 0 {
		t.Errorf("srgbEncode(-0.5) = %v, want 0", got)
	}
	if got := srgbDecode(1.5); got != 1 {
		t.Errorf("srgbDecode(1.5) = %v, want 1", got)
	}
}
