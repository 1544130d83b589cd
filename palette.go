package pix

import "bytes"

// Palette is a bounded color table for indexed rasters. Every entry
// shares one 8-bit format and is stored in that format's byte layout,
// so the table can be handed to a codec as-is.
type Palette struct {
	format   Format
	capacity int
	table    []byte
}

// NewPalette creates an empty palette holding up to capacity entries
// of an 8-bit format. Other depths return a FormatMismatchError.
func NewPalette(f Format, capacity int) (*Palette, error) {
	if f.Depth != Depth8 {
		return nil, &FormatMismatchError{Got: f.String(), Want: "8-bit depth"}
	}
	if capacity < 0 {
		capacity = 0
	}
	return &Palette{format: f, capacity: capacity}, nil
}

// Format returns the entry format.
func (p *Palette) Format() Format { return p.format }

// Len returns the number of entries.
func (p *Palette) Len() int { return len(p.table) / p.format.BytesPerPixel() }

// Capacity returns the maximum number of entries.
func (p *Palette) Capacity() int { return p.capacity }

// Bytes exposes the table in the entry format's byte layout. The
// slice aliases the palette's storage.
func (p *Palette) Bytes() []byte { return p.table }

// Entry returns the color at index i. Out-of-range indexes return
// ErrOutOfBounds.
func (p *Palette) Entry(i int) (Pixel, error) {
	if i < 0 || i >= p.Len() {
		return Pixel{}, ErrOutOfBounds
	}
	bpp := p.format.BytesPerPixel()
	return Pixel{format: p.format, c: p.format.decodePixel(p.table[i*bpp:])}, nil
}

// SetEntry returns the index of the entry matching color, adding the
// color as a new entry when no match exists. The color converts into
// the palette format before the search, so a match is an exact match
// of stored bytes. Returns false when the table is full and holds no
// match.
func (p *Palette) SetEntry(color Pixel) (int, bool) {
	bpp := p.format.BytesPerPixel()
	enc := make([]byte, bpp)
	p.format.encodePixel(enc, convertChannels(color.format, p.format, color.c))
	for i := 0; i < p.Len(); i++ {
		if bytes.Equal(p.table[i*bpp:(i+1)*bpp], enc) {
			return i, true
		}
	}
	if p.Len() >= p.capacity {
		return 0, false
	}
	p.table = append(p.table, enc...)
	return p.Len() - 1, true
}

// ReplaceEntry overwrites the entry at index i and returns the
// previous color. Out-of-range indexes return ErrOutOfBounds.
func (p *Palette) ReplaceEntry(i int, color Pixel) (Pixel, error) {
	old, err := p.Entry(i)
	if err != nil {
		return Pixel{}, err
	}
	bpp := p.format.BytesPerPixel()
	p.format.encodePixel(p.table[i*bpp:(i+1)*bpp], convertChannels(color.format, p.format, color.c))
	return old, nil
}

// Nearest returns the index of the entry closest to color by squared
// distance over linear RGB and alpha working values. An empty palette
// returns false.
func (p *Palette) Nearest(color Pixel) (int, bool) {
	n := p.Len()
	if n == 0 {
		return 0, false
	}
	bpp := p.format.BytesPerPixel()
	want := convertChannels(color.format, RGBA32, color.c)
	best := 0
	bestDist := -1.0
	for i := 0; i < n; i++ {
		c := p.format.decodePixel(p.table[i*bpp:])
		got := convertChannels(p.format, RGBA32, c)
		d := 0.0
		for k := 0; k < 4; k++ {
			diff := got[k] - want[k]
			d += diff * diff
		}
		if bestDist < 0 || d < bestDist {
			best, bestDist = i, d
		}
	}
	return best, true
}

// Histogram counts how many times each entry index occurs in a slice
// of indexed pixel values. An index at or past Len returns
// ErrOutOfBounds.
func (p *Palette) Histogram(indices []byte) ([]int, error) {
	hist := make([]int, p.Len())
	for _, idx := range indices {
		if int(idx) >= len(hist) {
			return nil, ErrOutOfBounds
		}
		hist[idx]++
	}
	return hist, nil
}
