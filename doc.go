// Package pix provides pixel formats, color model conversion and
// Porter-Duff compositing for 2D rasters.
//
// A pixel format is described by four independent axes: a color model
// (RGB, BGR, CMY, Gray, HSV, HSL, HWB, YCbCr, Oklab, XYZ or
// alpha-only Mask), a
// channel depth (8-bit, 16-bit or 32-bit float), an alpha mode (opaque,
// straight or premultiplied) and a gamma mode (linear or sRGB). A Raster
// is an owned, row-major grid of pixels in exactly one format.
//
// # Color model conversions
//
// Every color model converts to and from linear RGB, the hub
// representation. Converting between any two models routes through the
// hub, so adding a model never touches the others. Conversions through
// hue-based models (HSV, HSL, HWB) are not bit-exact round trips at
// degenerate points such as zero saturation; this is expected.
//
// # Compositing
//
// Compositing requires both operands to be premultiplied alpha with
// linear gamma; other formats must be converted first. Operators are
// the Porter-Duff set expressed as coefficient pairs over source and
// destination alpha. Same-format 8-bit rasters with three color
// channels and alpha take a batched path that processes 16 pixels at a
// time and is bit-identical to the scalar path.
//
// # Interop
//
// Rasters expose their backing storage as a flat byte buffer in
// declared channel order (little-endian for 16-bit channels, IEEE 754
// little-endian for 32-bit), the boundary used by codecs. Raster also
// implements image.Image, and FromImage builds a Raster from any
// image.Image.
package pix
