package pix

// Pixel is one value of a Format: the format descriptor plus its
// channel values. Channel values are held as unit fractions of the
// stored encoding, quantized to the format depth.
type Pixel struct {
	format Format
	c      [4]float64
}

// NewPixel creates a pixel from unit channel values in the format's
// declared order (color channels, then alpha when present). Missing
// values default to zero, extra values are ignored, and every value is
// clamped and quantized to the format depth.
func NewPixel(f Format, values ...float64) Pixel {
	var c [4]float64
	c[3] = 1
	n := f.Model.Channels()
	for i := 0; i < n && i < len(values); i++ {
		c[i] = f.Depth.quantize(values[i])
	}
	if f.HasAlpha() {
		c[3] = 0
		if n < len(values) {
			c[3] = f.Depth.quantize(values[n])
		}
	}
	return Pixel{format: f, c: c}
}

// NewPixel8 creates a pixel from raw 8-bit channel values in declared
// order. The format must have Depth8.
func NewPixel8(f Format, values ...uint8) Pixel {
	vs := make([]float64, len(values))
	for i, v := range values {
		vs[i] = Ch8(v).Unit()
	}
	return NewPixel(f, vs...)
}

// NewPixel16 creates a pixel from raw 16-bit channel values in
// declared order. The format must have Depth16.
func NewPixel16(f Format, values ...uint16) Pixel {
	vs := make([]float64, len(values))
	for i, v := range values {
		vs[i] = Ch16(v).Unit()
	}
	return NewPixel(f, vs...)
}

// NewPixel32 creates a pixel from float channel values in declared
// order.
func NewPixel32(f Format, values ...float32) Pixel {
	vs := make([]float64, len(values))
	for i, v := range values {
		vs[i] = NewCh32(v).Unit()
	}
	return NewPixel(f, vs...)
}

// Format returns the pixel's format.
func (p Pixel) Format() Format { return p.format }

// Channel returns the unit value of the i-th channel in declared
// order. Out-of-range indexes return 0.
func (p Pixel) Channel(i int) float64 {
	n := p.format.Model.Channels()
	switch {
	case i >= 0 && i < n:
		return p.c[i]
	case i == n && p.format.HasAlpha():
		return p.c[3]
	default:
		return 0
	}
}

// Alpha returns the unit alpha value; 1 for opaque formats.
func (p Pixel) Alpha() float64 { return p.c[3] }

// Convert returns the pixel re-expressed in the destination format
// via the conversion pipeline. Converting to the same format is the
// identity.
func (p Pixel) Convert(dst Format) Pixel {
	return Pixel{format: dst, c: convertChannels(p.format, dst, p.c)}
}
