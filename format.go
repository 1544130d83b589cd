package pix

import (
	"encoding/binary"
	"math"
)

// Depth is the storage precision of one channel.
type Depth uint8

const (
	// Depth8 stores a channel as a uint8 scaled over [0, 255].
	Depth8 Depth = iota

	// Depth16 stores a channel as a little-endian uint16 scaled over
	// [0, 65535].
	Depth16

	// Depth32 stores a channel as a little-endian IEEE 754 float32 in
	// [0, 1].
	Depth32
)

// Bytes returns the storage size of one channel.
func (d Depth) Bytes() int {
	switch d {
	case Depth8:
		return 1
	case Depth16:
		return 2
	default:
		return 4
	}
}

func (d Depth) String() string {
	switch d {
	case Depth8:
		return "8"
	case Depth16:
		return "16"
	default:
		return "32"
	}
}

// quantize rounds a unit value onto the representable grid of the
// depth. Depth32 only clamps.
func (d Depth) quantize(v float64) float64 {
	v = clampUnit(v)
	switch d {
	case Depth8:
		return math.Round(v*255) / 255
	case Depth16:
		return math.Round(v*65535) / 65535
	default:
		return float64(float32(v))
	}
}

// Format describes a pixel representation: the color model, the
// channel depth, the alpha mode and the gamma mode. A Raster holds
// pixels of exactly one Format.
type Format struct {
	Model Model
	Depth Depth
	Alpha Alpha
	Gamma Gamma
}

// HasAlpha reports whether pixels carry an alpha channel.
func (f Format) HasAlpha() bool { return f.Alpha != AlphaOpaque }

// Channels is the number of stored channels per pixel, including
// alpha when present.
func (f Format) Channels() int {
	n := f.Model.Channels()
	if f.HasAlpha() {
		n++
	}
	return n
}

// BytesPerPixel is the storage size of one pixel.
func (f Format) BytesPerPixel() int {
	return f.Channels() * f.Depth.Bytes()
}

// Equal reports whether two formats describe the same representation.
// Models compare by name.
func (f Format) Equal(o Format) bool {
	return f.Model.Name() == o.Model.Name() &&
		f.Depth == o.Depth && f.Alpha == o.Alpha && f.Gamma == o.Gamma
}

func (f Format) String() string {
	return f.Model.Name() + f.Depth.String() +
		" " + f.Alpha.String() + " " + f.Gamma.String()
}

// Predefined formats. The name gives the model and depth; "A" marks a
// straight alpha channel, "Premul" premultiplied alpha, and the "S"
// prefix sRGB gamma. Everything else is opaque and linear.
var (
	RGB8         = Format{ModelRGB, Depth8, AlphaOpaque, GammaLinear}
	RGB16        = Format{ModelRGB, Depth16, AlphaOpaque, GammaLinear}
	RGB32        = Format{ModelRGB, Depth32, AlphaOpaque, GammaLinear}
	RGBA8        = Format{ModelRGB, Depth8, AlphaStraight, GammaLinear}
	RGBA16       = Format{ModelRGB, Depth16, AlphaStraight, GammaLinear}
	RGBA32       = Format{ModelRGB, Depth32, AlphaStraight, GammaLinear}
	RGBA8Premul  = Format{ModelRGB, Depth8, AlphaPremultiplied, GammaLinear}
	RGBA16Premul = Format{ModelRGB, Depth16, AlphaPremultiplied, GammaLinear}
	RGBA32Premul = Format{ModelRGB, Depth32, AlphaPremultiplied, GammaLinear}
	SRGB8        = Format{ModelRGB, Depth8, AlphaOpaque, GammaSRGB}
	SRGBA8       = Format{ModelRGB, Depth8, AlphaStraight, GammaSRGB}
	SRGBA16      = Format{ModelRGB, Depth16, AlphaStraight, GammaSRGB}

	BGR8        = Format{ModelBGR, Depth8, AlphaOpaque, GammaLinear}
	BGRA8       = Format{ModelBGR, Depth8, AlphaStraight, GammaLinear}
	BGRA8Premul = Format{ModelBGR, Depth8, AlphaPremultiplied, GammaLinear}

	CMY8  = Format{ModelCMY, Depth8, AlphaOpaque, GammaLinear}
	CMY16 = Format{ModelCMY, Depth16, AlphaOpaque, GammaLinear}

	Gray8      = Format{ModelGray, Depth8, AlphaOpaque, GammaLinear}
	Gray16     = Format{ModelGray, Depth16, AlphaOpaque, GammaLinear}
	Gray32     = Format{ModelGray, Depth32, AlphaOpaque, GammaLinear}
	GrayAlpha8 = Format{ModelGray, Depth8, AlphaStraight, GammaLinear}
	SGray8     = Format{ModelGray, Depth8, AlphaOpaque, GammaSRGB}

	HSV8  = Format{ModelHSV, Depth8, AlphaOpaque, GammaLinear}
	HSV32 = Format{ModelHSV, Depth32, AlphaOpaque, GammaLinear}
	HSL8  = Format{ModelHSL, Depth8, AlphaOpaque, GammaLinear}
	HSL32 = Format{ModelHSL, Depth32, AlphaOpaque, GammaLinear}
	HWB8  = Format{ModelHWB, Depth8, AlphaOpaque, GammaLinear}
	HWB32 = Format{ModelHWB, Depth32, AlphaOpaque, GammaLinear}

	YCbCr8 = Format{ModelYCbCr, Depth8, AlphaOpaque, GammaLinear}

	Oklab8  = Format{ModelOklab, Depth8, AlphaOpaque, GammaLinear}
	Oklab32 = Format{ModelOklab, Depth32, AlphaOpaque, GammaLinear}
	XYZ16   = Format{ModelXYZ, Depth16, AlphaOpaque, GammaLinear}
	XYZ32   = Format{ModelXYZ, Depth32, AlphaOpaque, GammaLinear}

	Mask8  = Format{ModelMask, Depth8, AlphaStraight, GammaLinear}
	Mask16 = Format{ModelMask, Depth16, AlphaStraight, GammaLinear}
	Mask32 = Format{ModelMask, Depth32, AlphaStraight, GammaLinear}
)

// Working values are [4]float64: color channels at 0..2 in model
// order, alpha at 3 (1 for opaque formats). Mask pixels keep their
// coverage in the alpha slot and zero color.

// decodePixel reads one pixel from buf into working values. The
// values stay in the stored encoding (gamma still applied); only the
// layout is normalized.
func (f Format) decodePixel(buf []byte) [4]float64 {
	var c [4]float64
	c[3] = 1
	n := f.Model.Channels()
	for i := 0; i < n; i++ {
		c[i] = f.readChannel(buf, i)
	}
	if f.HasAlpha() {
		c[3] = f.readChannel(buf, n)
	}
	return c
}

// encodePixel writes working values as one pixel into buf.
func (f Format) encodePixel(buf []byte, c [4]float64) {
	n := f.Model.Channels()
	for i := 0; i < n; i++ {
		f.writeChannel(buf, i, c[i])
	}
	if f.HasAlpha() {
		f.writeChannel(buf, n, c[3])
	}
}

func (f Format) readChannel(buf []byte, i int) float64 {
	switch f.Depth {
	case Depth8:
		return Ch8(buf[i]).Unit()
	case Depth16:
		return Ch16(binary.LittleEndian.Uint16(buf[i*2:])).Unit()
	default:
		return NewCh32(math.Float32frombits(
			binary.LittleEndian.Uint32(buf[i*4:]))).Unit()
	}
}

func (f Format) writeChannel(buf []byte, i int, v float64) {
	v = clampUnit(v)
	switch f.Depth {
	case Depth8:
		buf[i] = uint8(math.Round(v * 255))
	case Depth16:
		binary.LittleEndian.PutUint16(buf[i*2:], uint16(math.Round(v*65535)))
	default:
		binary.LittleEndian.PutUint32(buf[i*4:], math.Float32bits(float32(v)))
	}
}

// convertChannels runs the format conversion pipeline on working
// values: decode gamma, normalize to straight alpha, route through the
// color model hub, apply the destination alpha mode, re-encode gamma
// and quantize to the destination depth. Converting a format to itself
// is the identity.
func convertChannels(src, dst Format, c [4]float64) [4]float64 {
	if src.Equal(dst) {
		return c
	}

	n := src.Model.Channels()
	for i := 0; i < n; i++ {
		c[i] = src.Gamma.ToLinear(c[i])
	}
	if src.Alpha == AlphaPremultiplied {
		for i := 0; i < n; i++ {
			c[i] = unpremultiply(c[i], c[3])
		}
	}

	if src.Model.Name() != dst.Model.Name() {
		rgb := src.Model.ToRGB([3]float64{c[0], c[1], c[2]})
		out := dst.Model.FromRGB(rgb)
		c[0], c[1], c[2] = out[0], out[1], out[2]
	}

	m := dst.Model.Channels()
	if dst.Alpha == AlphaPremultiplied {
		for i := 0; i < m; i++ {
			c[i] = premultiply(c[i], c[3])
		}
	}
	for i := 0; i < m; i++ {
		c[i] = dst.Depth.quantize(dst.Gamma.FromLinear(c[i]))
	}
	if dst.HasAlpha() {
		c[3] = dst.Depth.quantize(c[3])
	} else {
		c[3] = 1
	}
	return c
}
