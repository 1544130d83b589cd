package pix

import (
	"bytes"
	"errors"
	"testing"
)

func TestNewPaletteRejectsWideDepths(t *testing.T) {
	_, err := NewPalette(RGB16, 4)
	var mismatch *FormatMismatchError
	if !errors.As(err, &mismatch) {
		t.Fatalf("NewPalette(RGB16) error = %v, want FormatMismatchError", err)
	}
}

func TestPaletteFillsToCapacity(t *testing.T) {
	p, err := NewPalette(Gray8, 256)
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 256; i++ {
		idx, ok := p.SetEntry(NewPixel8(Gray8, uint8(i)))
		if !ok || idx != i {
			t.Fatalf("SetEntry(gray %d) = (%d, %v), want (%d, true)", i, idx, ok, i)
		}
	}
	if p.Len() != 256 {
		t.Fatalf("Len() = %d, want 256", p.Len())
	}
	// A duplicate matches its existing entry instead of growing the
	// table, even when the table is full.
	if idx, ok := p.SetEntry(NewPixel8(Gray8, 128)); !ok || idx != 128 {
		t.Errorf("duplicate SetEntry = (%d, %v), want (128, true)", idx, ok)
	}
}

func TestPaletteRejectsWhenFull(t *testing.T) {
	p, _ := NewPalette(SRGB8, 2)
	p.SetEntry(NewPixel8(SRGB8, 255, 0, 0))
	p.SetEntry(NewPixel8(SRGB8, 0, 255, 0))
	if _, ok := p.SetEntry(NewPixel8(SRGB8, 0, 0, 255)); ok {
		t.Error("SetEntry on a full table accepted a new color")
	}
	// A color already in the table still matches.
	if idx, ok := p.SetEntry(NewPixel8(SRGB8, 0, 255, 0)); !ok || idx != 1 {
		t.Errorf("duplicate SetEntry = (%d, %v), want (1, true)", idx, ok)
	}
}

func TestPaletteEntry(t *testing.T) {
	p, _ := NewPalette(SRGB8, 4)
	p.SetEntry(NewPixel8(SRGB8, 255, 0, 0))
	e, err := p.Entry(0)
	if err != nil {
		t.Fatal(err)
	}
	if e.Channel(0) != 1 || e.Channel(1) != 0 {
		t.Errorf("Entry(0) = %v, want red", e)
	}
	if _, err := p.Entry(1); err != ErrOutOfBounds {
		t.Errorf("Entry(1) error = %v, want ErrOutOfBounds", err)
	}
	if _, err := p.Entry(-1); err != ErrOutOfBounds {
		t.Errorf("Entry(-1) error = %v, want ErrOutOfBounds", err)
	}
}

func TestPaletteReplaceEntry(t *testing.T) {
	p, _ := NewPalette(SRGB8, 4)
	p.SetEntry(NewPixel8(SRGB8, 255, 0, 0))
	old, err := p.ReplaceEntry(0, NewPixel8(SRGB8, 0, 255, 0))
	if err != nil {
		t.Fatal(err)
	}
	if old.Channel(0) != 1 || old.Channel(1) != 0 {
		t.Errorf("previous entry = %v, want red", old)
	}
	e, _ := p.Entry(0)
	if e.Channel(1) != 1 {
		t.Errorf("replaced entry = %v, want green", e)
	}
	if _, err := p.ReplaceEntry(5, NewPixel8(SRGB8, 0, 0, 0)); err != ErrOutOfBounds {
		t.Errorf("ReplaceEntry(5) error = %v, want ErrOutOfBounds", err)
	}
}

func TestPaletteBytesLayout(t *testing.T) {
	p, _ := NewPalette(SRGB8, 4)
	p.SetEntry(NewPixel8(SRGB8, 255, 0, 0))
	p.SetEntry(NewPixel8(SRGB8, 0, 0, 255))
	want := []byte{255, 0, 0, 0, 0, 255}
	if !bytes.Equal(p.Bytes(), want) {
		t.Errorf("Bytes() = %v, want %v", p.Bytes(), want)
	}
}

func TestPaletteConvertsColorsOnEntry(t *testing.T) {
	// Colors in other formats convert into the palette format before
	// the exact-match search.
	p, _ := NewPalette(SRGB8, 4)
	p.SetEntry(NewPixel8(SRGB8, 255, 0, 0))
	if idx, ok := p.SetEntry(NewPixel(RGB32, 1, 0, 0)); !ok || idx != 0 {
		t.Errorf("SetEntry(linear red) = (%d, %v), want (0, true)", idx, ok)
	}
}

func TestPaletteNearest(t *testing.T) {
	p, _ := NewPalette(SRGB8, 4)
	if _, ok := p.Nearest(NewPixel8(SRGB8, 0, 0, 0)); ok {
		t.Fatal("Nearest on an empty palette reported a match")
	}
	p.SetEntry(NewPixel8(SRGB8, 0, 0, 0))
	p.SetEntry(NewPixel8(SRGB8, 255, 0, 0))
	p.SetEntry(NewPixel8(SRGB8, 255, 255, 255))
	tests := []struct {
		color Pixel
		want  int
	}{
		{NewPixel8(SRGB8, 250, 10, 5), 1},
		{NewPixel8(SRGB8, 230, 230, 240), 2},
		{NewPixel8(SRGB8, 10, 10, 10), 0},
	}
	for _, tt := range tests {
		if got, ok := p.Nearest(tt.color); !ok || got != tt.want {
			t.Errorf("Nearest(%v) = (%d, %v), want (%d, true)", tt.color, got, ok, tt.want)
		}
	}
}

func TestPaletteHistogram(t *testing.T) {
	p, _ := NewPalette(Gray8, 4)
	for i := 0; i < 3; i++ {
		p.SetEntry(NewPixel8(Gray8, uint8(i*100)))
	}
	hist, err := p.Histogram([]byte{0, 1, 1, 2, 2, 2})
	if err != nil {
		t.Fatal(err)
	}
	want := []int{1, 2, 3}
	for i := range want {
		if hist[i] != want[i] {
			t.Errorf("hist[%d] = %d, want %d", i, hist[i], want[i])
		}
	}
	if _, err := p.Histogram([]byte{3}); err != ErrOutOfBounds {
		t.Errorf("histogram with stray index error = %v, want ErrOutOfBounds", err)
	}
}
