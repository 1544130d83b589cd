package wide

import "testing"

func TestSplat(t *testing.T) {
	v := Splat(42)
	for i, lane := range v {
		if lane != 42 {
			t.Fatalf("lane %d = %d, want 42", i, lane)
		}
	}
}

func TestAdd(t *testing.T) {
	a := Splat(100)
	b := Splat(200)
	if got := a.Add(b); got != Splat(300) {
		t.Errorf("Add = %v, want all 300", got)
	}
}

func TestInv(t *testing.T) {
	tests := []struct {
		in, want uint16
	}{
		{0, 255},
		{255, 0},
		{100, 155},
	}
	for _, tt := range tests {
		if got := Splat(tt.in).Inv(); got != Splat(tt.want) {
			t.Errorf("Inv(%d) = %v, want all %d", tt.in, got, tt.want)
		}
	}
}

func TestClamp(t *testing.T) {
	if got := Splat(300).Clamp(255); got != Splat(255) {
		t.Errorf("Clamp = %v, want all 255", got)
	}
	if got := Splat(10).Clamp(255); got != Splat(10) {
		t.Errorf("Clamp = %v, want all 10", got)
	}
}

// Division by 255 must be exact on multiples of 255; the compositing
// identities (opaque replace, transparent keep) depend on it.
func TestMulDiv255Exact(t *testing.T) {
	for v := 0; v <= 255; v++ {
		if got := Splat(uint16(v)).MulDiv255(Splat(255)); got != Splat(uint16(v)) {
			t.Fatalf("%d * 255 / 255 = %v, want all %d", v, got, v)
		}
	}
	if got := Splat(123).MulDiv255(Splat(0)); got != Splat(0) {
		t.Errorf("mul by zero = %v, want all 0", got)
	}
}

func TestBlockLoadStoreRoundTrip(t *testing.T) {
	buf := make([]byte, BlockPixels*4)
	for i := range buf {
		buf[i] = byte(i * 7)
	}
	var b Block
	b.LoadSrc(buf)
	b.LoadDst(buf)

	// Src becomes Dst under the Src operator.
	b.D0, b.D1, b.D2, b.DA = b.S0, b.S1, b.S2, b.SA

	out := make([]byte, len(buf))
	b.StoreDst(out)
	for i := range buf {
		if out[i] != buf[i] {
			t.Fatalf("byte %d = %d, want %d", i, out[i], buf[i])
		}
	}
}

func TestLoadSrcPixelBroadcasts(t *testing.T) {
	var b Block
	b.LoadSrcPixel([4]byte{1, 2, 3, 4})
	if b.S0 != Splat(1) || b.S1 != Splat(2) || b.S2 != Splat(3) || b.SA != Splat(4) {
		t.Errorf("broadcast lanes = %v %v %v %v", b.S0, b.S1, b.S2, b.SA)
	}
}
