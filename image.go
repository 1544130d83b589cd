package pix

import (
	"image"
	"image/color"
	"math"

	xdraw "golang.org/x/image/draw"
)

// Raster implements image.Image. At converts through sRGB straight
// alpha, the convention of the image/color package.

// ColorModel returns the color model used by At.
func (r *Raster) ColorModel() color.Model { return color.NRGBA64Model }

// Bounds returns the raster bounds with the origin at (0, 0).
func (r *Raster) Bounds() image.Rectangle {
	return image.Rect(0, 0, r.width, r.height)
}

// At returns the pixel at (x, y) converted to 16-bit sRGB with
// straight alpha. Out-of-bounds coordinates return transparent
// black, matching the stdlib image types.
func (r *Raster) At(x, y int) color.Color {
	p, err := r.Pixel(x, y)
	if err != nil {
		return color.NRGBA64{}
	}
	q := p.Convert(SRGBA16)
	return color.NRGBA64{
		R: uint16(math.Round(q.c[0] * 65535)),
		G: uint16(math.Round(q.c[1] * 65535)),
		B: uint16(math.Round(q.c[2] * 65535)),
		A: uint16(math.Round(q.c[3] * 65535)),
	}
}

// Image returns a stdlib copy of the raster as 8-bit sRGB with
// straight alpha. The returned image owns its own storage.
func (r *Raster) Image() *image.NRGBA {
	conv := r.Convert(SRGBA8)
	return &image.NRGBA{
		Pix:    conv.pix,
		Stride: 4 * r.width,
		Rect:   image.Rect(0, 0, r.width, r.height),
	}
}

// FromImage creates a raster in the given format from any
// image.Image. The source is first normalized to 8-bit sRGB with
// straight alpha, then converted; the source image is not retained.
func FromImage(img image.Image, f Format) (*Raster, error) {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	norm := image.NewNRGBA(image.Rect(0, 0, w, h))
	xdraw.Draw(norm, norm.Bounds(), img, b.Min, xdraw.Src)

	staged, err := NewRasterWithBuffer(SRGBA8, w, h, norm.Pix)
	if err != nil {
		return nil, err
	}
	return staged.Convert(f), nil
}
