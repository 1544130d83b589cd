package pix

import (
	"github.com/gopix/pix/internal/blend"
	"github.com/gopix/pix/internal/parallel"
	"github.com/gopix/pix/internal/wide"
)

// Op selects a Porter-Duff compositing operator. Each operator is a
// pair of coefficients (Fsrc, Fdst) over the source and destination
// alpha; the result per channel is src*Fsrc + dst*Fdst.
type Op = blend.Op

// Porter-Duff operators.
const (
	OpClear   = blend.Clear
	OpSrc     = blend.Src
	OpDst     = blend.Dst
	OpSrcOver = blend.SrcOver
	OpDstOver = blend.DstOver
	OpSrcIn   = blend.SrcIn
	OpDstIn   = blend.DstIn
	OpSrcOut  = blend.SrcOut
	OpDstOut  = blend.DstOut
	OpSrcAtop = blend.SrcAtop
	OpDstAtop = blend.DstAtop
	OpXor     = blend.Xor
	OpPlus    = blend.Plus
)

// CompositeColor blends one color over every pixel of the region
// (clipped to the raster bounds). The destination must be
// premultiplied and linear; the color operand must be premultiplied
// and linear, or a coverage (mask) pixel. Violations return a
// FormatMismatchError before any pixel is touched.
func CompositeColor(dst *Raster, reg Region, color Pixel, op Op) error {
	if err := checkCompositeDst(dst.format); err != nil {
		return err
	}
	if err := checkCompositeSrc(color.format); err != nil {
		return err
	}
	clip := reg.Intersect(dst.Region())
	if clip.Empty() {
		return nil
	}
	s := convertChannels(color.format, dst.format, color.c)

	if fastCompositeFormat(dst.format) {
		var sp [4]byte
		dst.format.encodePixel(sp[:], s)
		compositeColorFast(dst, clip, sp, op)
		return nil
	}

	parallel.Rows(clip.Height, 0, func(y0, y1 int) {
		rows := NewRegion(clip.X, clip.Y+y0, clip.Width, y1-y0)
		bpp := dst.format.BytesPerPixel()
		for _, drow := range dst.RowsMut(rows) {
			for x := 0; x < len(drow); x += bpp {
				d := dst.format.decodePixel(drow[x:])
				dst.format.encodePixel(drow[x:], blendChannels(op, s, d))
			}
		}
	})
	return nil
}

// CompositeRaster blends pixels from a source raster region into the
// destination with the region's top-left placed at (dx, dy). The
// rectangle is clipped like Copy. Both formats must be premultiplied
// and linear, except that a mask source composites as coverage.
// Violations return a FormatMismatchError before any pixel is
// touched.
func CompositeRaster(dst *Raster, dx, dy int, src *Raster, srcReg Region, op Op) error {
	if err := checkCompositeDst(dst.format); err != nil {
		return err
	}
	if err := checkCompositeSrc(src.format); err != nil {
		return err
	}
	eff := srcReg.Intersect(src.Region()).
		Intersect(dst.Region().Translate(srcReg.X-dx, srcReg.Y-dy))
	if eff.Empty() {
		return nil
	}
	ox := dx - srcReg.X
	oy := dy - srcReg.Y

	if src.format.Equal(dst.format) && fastCompositeFormat(dst.format) {
		compositeRasterFast(dst, src, eff, ox, oy, op)
		return nil
	}

	sbpp := src.format.BytesPerPixel()
	dbpp := dst.format.BytesPerPixel()
	parallel.Rows(eff.Height, 0, func(y0, y1 int) {
		for y := eff.Y + y0; y < eff.Y+y1; y++ {
			srow := src.rowSlice(eff.X, y, eff.Width)
			drow := dst.rowSlice(eff.X+ox, y+oy, eff.Width)
			for i := 0; i < eff.Width; i++ {
				s := convertChannels(src.format, dst.format,
					src.format.decodePixel(srow[i*sbpp:]))
				d := dst.format.decodePixel(drow[i*dbpp:])
				dst.format.encodePixel(drow[i*dbpp:], blendChannels(op, s, d))
			}
		}
	})
	return nil
}

func checkCompositeDst(f Format) error {
	if f.Alpha != AlphaPremultiplied || f.Gamma != GammaLinear {
		return &FormatMismatchError{Got: f.String(), Want: "premultiplied linear"}
	}
	return nil
}

func checkCompositeSrc(f Format) error {
	if f.Model.Channels() == 0 {
		// Coverage sources carry no color to premultiply.
		return nil
	}
	if f.Alpha != AlphaPremultiplied || f.Gamma != GammaLinear {
		return &FormatMismatchError{Got: f.String(), Want: "premultiplied linear"}
	}
	return nil
}

// fastCompositeFormat reports whether the format takes the 8-bit
// batch path: 3 color channels plus alpha, one byte each.
func fastCompositeFormat(f Format) bool {
	return f.Depth == Depth8 && f.Model.Channels() == 3 && f.HasAlpha()
}

// blendChannels applies an operator to working values. Both operands
// are premultiplied and linear; the coefficients apply uniformly to
// the color channels and the alpha.
func blendChannels(op Op, s, d [4]float64) [4]float64 {
	fs, fd := op.Coefficients(s[3], d[3])
	var out [4]float64
	for i := range out {
		out[i] = clampUnit(s[i]*fs + d[i]*fd)
	}
	return out
}

func compositeColorFast(dst *Raster, clip Region, sp [4]byte, op Op) {
	batch := blend.GetBatch(op)
	scalar := blend.Get(op)
	parallel.Rows(clip.Height, 0, func(y0, y1 int) {
		var blk wide.Block
		blk.LoadSrcPixel(sp)
		rows := NewRegion(clip.X, clip.Y+y0, clip.Width, y1-y0)
		for _, drow := range dst.RowsMut(rows) {
			x := 0
			for ; x+wide.BlockPixels <= clip.Width; x += wide.BlockPixels {
				off := x * 4
				blk.LoadDst(drow[off:])
				batch(&blk)
				blk.StoreDst(drow[off:])
			}
			for ; x < clip.Width; x++ {
				off := x * 4
				drow[off], drow[off+1], drow[off+2], drow[off+3] = scalar(
					sp[0], sp[1], sp[2], sp[3],
					drow[off], drow[off+1], drow[off+2], drow[off+3])
			}
		}
	})
}

func compositeRasterFast(dst, src *Raster, eff Region, ox, oy int, op Op) {
	batch := blend.GetBatch(op)
	scalar := blend.Get(op)
	parallel.Rows(eff.Height, 0, func(y0, y1 int) {
		var blk wide.Block
		for y := eff.Y + y0; y < eff.Y+y1; y++ {
			srow := src.rowSlice(eff.X, y, eff.Width)
			drow := dst.rowSlice(eff.X+ox, y+oy, eff.Width)
			x := 0
			for ; x+wide.BlockPixels <= eff.Width; x += wide.BlockPixels {
				off := x * 4
				blk.LoadSrc(srow[off:])
				blk.LoadDst(drow[off:])
				batch(&blk)
				blk.StoreDst(drow[off:])
			}
			for ; x < eff.Width; x++ {
				off := x * 4
				drow[off], drow[off+1], drow[off+2], drow[off+3] = scalar(
					srow[off], srow[off+1], srow[off+2], srow[off+3],
					drow[off], drow[off+1], drow[off+2], drow[off+3])
			}
		}
	})
}
