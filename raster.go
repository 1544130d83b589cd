package pix

import (
	"iter"
	"math"

	"github.com/gopix/pix/internal/parallel"
)

// Raster is an owned two-dimensional grid of pixels in one Format,
// stored row-major with no padding. The backing storage has a single
// owner; no operation retains a reference past its own call.
type Raster struct {
	format Format
	width  int
	height int
	pix    []byte
}

// NewRaster creates a raster cleared to zero (transparent black for
// formats with alpha). Returns ErrSizeOverflow when a dimension is
// negative or the byte size would overflow.
func NewRaster(f Format, width, height int) (*Raster, error) {
	n, err := rasterSize(f, width, height)
	if err != nil {
		return nil, err
	}
	return &Raster{format: f, width: width, height: height, pix: make([]byte, n)}, nil
}

// NewRasterFilled creates a raster with every pixel set to the given
// color, converted into the raster's format if necessary.
func NewRasterFilled(f Format, width, height int, color Pixel) (*Raster, error) {
	r, err := NewRaster(f, width, height)
	if err != nil {
		return nil, err
	}
	r.Fill(r.Region(), color)
	return r, nil
}

// NewRasterWithBuffer creates a raster over a caller-provided flat
// buffer of raw channel bytes in the format's declared layout
// (row-major, no padding, declared channel order, little-endian for
// multi-byte channels). The raster takes ownership of buf. Returns
// ErrBufferSize when the length does not match.
func NewRasterWithBuffer(f Format, width, height int, buf []byte) (*Raster, error) {
	n, err := rasterSize(f, width, height)
	if err != nil {
		return nil, err
	}
	if len(buf) != n {
		return nil, ErrBufferSize
	}
	return &Raster{format: f, width: width, height: height, pix: buf}, nil
}

// NewRasterFrom creates a raster of the same dimensions as src with
// every pixel converted to the given format.
func NewRasterFrom(f Format, src *Raster) *Raster {
	return src.Convert(f)
}

func rasterSize(f Format, width, height int) (int, error) {
	if width < 0 || height < 0 {
		return 0, ErrSizeOverflow
	}
	bpp := f.BytesPerPixel()
	if width > 0 && height > math.MaxInt/width {
		return 0, ErrSizeOverflow
	}
	n := width * height
	if n > 0 && bpp > math.MaxInt/n {
		return 0, ErrSizeOverflow
	}
	return n * bpp, nil
}

// Format returns the pixel format shared by every pixel in the
// raster.
func (r *Raster) Format() Format { return r.format }

// Width returns the width in pixels.
func (r *Raster) Width() int { return r.width }

// Height returns the height in pixels.
func (r *Raster) Height() int { return r.height }

// Bytes exposes the backing storage as a flat byte buffer in the
// format's declared layout. Mutations write through to the raster.
func (r *Raster) Bytes() []byte { return r.pix }

// Region returns the full bounds.
func (r *Raster) Region() Region {
	return Region{Width: r.width, Height: r.height}
}

// Rows returns a fresh sequence of (row index, row bytes) pairs over
// the given region intersected with the raster bounds. Out-of-bounds
// regions yield an empty sequence. The sequence is restartable: each
// call to Rows produces an independent iteration.
func (r *Raster) Rows(reg Region) iter.Seq2[int, []byte] {
	clip := reg.Intersect(r.Region())
	bpp := r.format.BytesPerPixel()
	return func(yield func(int, []byte) bool) {
		for y := clip.Y; y < clip.Bottom(); y++ {
			start := (y*r.width + clip.X) * bpp
			end := start + clip.Width*bpp
			if !yield(y, r.pix[start:end:end]) {
				return
			}
		}
	}
}

// RowsMut is Rows for callers that mutate the yielded slices; writes
// go straight to the backing storage.
func (r *Raster) RowsMut(reg Region) iter.Seq2[int, []byte] {
	return r.Rows(reg)
}

// Pixel returns the pixel at (x, y). Out-of-bounds coordinates return
// ErrOutOfBounds, never a clamped pixel.
func (r *Raster) Pixel(x, y int) (Pixel, error) {
	if x < 0 || x >= r.width || y < 0 || y >= r.height {
		return Pixel{}, ErrOutOfBounds
	}
	return Pixel{format: r.format, c: r.format.decodePixel(r.pixelBytes(x, y))}, nil
}

// SetPixel overwrites the pixel at (x, y), converting p into the
// raster's format if necessary. Out-of-bounds coordinates return
// ErrOutOfBounds.
func (r *Raster) SetPixel(x, y int, p Pixel) error {
	if x < 0 || x >= r.width || y < 0 || y >= r.height {
		return ErrOutOfBounds
	}
	c := convertChannels(p.format, r.format, p.c)
	r.format.encodePixel(r.pixelBytes(x, y), c)
	return nil
}

func (r *Raster) pixelBytes(x, y int) []byte {
	bpp := r.format.BytesPerPixel()
	start := (y*r.width + x) * bpp
	return r.pix[start : start+bpp : start+bpp]
}

// Fill overwrites every pixel in the region (clipped to the raster
// bounds) with one color. The color is converted into the raster's
// format once and the encoded bytes are reused for every write.
func (r *Raster) Fill(reg Region, color Pixel) {
	clip := reg.Intersect(r.Region())
	if clip.Empty() {
		return
	}
	bpp := r.format.BytesPerPixel()
	one := make([]byte, bpp)
	r.format.encodePixel(one, convertChannels(color.format, r.format, color.c))

	for _, row := range r.RowsMut(clip) {
		for x := 0; x < len(row); x += bpp {
			copy(row[x:], one)
		}
	}
}

// Copy copies pixels from a source raster region into this raster
// with the region's top-left placed at (dx, dy), converting formats
// per pixel when they differ. The effective rectangle is clipped so
// the copy never writes outside this raster and never reads outside
// the source.
func (r *Raster) Copy(dx, dy int, src *Raster, srcReg Region) {
	// Clip in source coordinates: requested region, source bounds and
	// the destination bounds mapped back through the offset.
	eff := srcReg.Intersect(src.Region()).
		Intersect(r.Region().Translate(srcReg.X-dx, srcReg.Y-dy))
	if eff.Empty() {
		return
	}
	ox := dx - srcReg.X
	oy := dy - srcReg.Y

	sbpp := src.format.BytesPerPixel()
	dbpp := r.format.BytesPerPixel()
	same := src.format.Equal(r.format)

	for sy, srow := range src.Rows(eff) {
		drow := r.rowSlice(eff.X+ox, sy+oy, eff.Width)
		if same {
			copy(drow, srow)
			continue
		}
		for i := 0; i < eff.Width; i++ {
			c := src.format.decodePixel(srow[i*sbpp:])
			r.format.encodePixel(drow[i*dbpp:], convertChannels(src.format, r.format, c))
		}
	}
}

// rowSlice returns the bytes of count pixels starting at (x, y). The
// caller guarantees the range is in bounds.
func (r *Raster) rowSlice(x, y, count int) []byte {
	bpp := r.format.BytesPerPixel()
	start := (y*r.width + x) * bpp
	end := start + count*bpp
	return r.pix[start:end:end]
}

// Convert returns a new raster of the same dimensions with every
// pixel converted to the destination format. Converting to the same
// format copies the storage. Tall rasters convert rows in parallel;
// each destination row is written by exactly one goroutine. Panics
// with ErrSizeOverflow when the destination byte size is not
// addressable, which can only happen when the destination format is
// wider than the source.
func (r *Raster) Convert(f Format) *Raster {
	n, err := rasterSize(f, r.width, r.height)
	if err != nil {
		panic(err)
	}
	out := &Raster{
		format: f,
		width:  r.width,
		height: r.height,
		pix:    make([]byte, n),
	}
	if f.Equal(r.format) {
		copy(out.pix, r.pix)
		return out
	}
	sbpp := r.format.BytesPerPixel()
	dbpp := f.BytesPerPixel()
	parallel.Rows(r.height, 0, func(y0, y1 int) {
		for y := y0; y < y1; y++ {
			srow := r.rowSlice(0, y, r.width)
			drow := out.rowSlice(0, y, r.width)
			for i := 0; i < r.width; i++ {
				c := r.format.decodePixel(srow[i*sbpp:])
				f.encodePixel(drow[i*dbpp:], convertChannels(r.format, f, c))
			}
		}
	})
	return out
}
