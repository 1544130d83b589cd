package pix

// ModelMask is the alpha-only coverage model. It has no color
// channels: a mask pixel converts to black carrying its coverage as
// alpha, and conversion from a color format keeps only the alpha.
// This single rule applies everywhere a mask meets a color model; when
// the destination has no alpha channel the coverage is dropped and the
// result is opaque black.
//
// Mask formats always use AlphaStraight: coverage is the alpha channel
// itself, so there is nothing to premultiply.
var ModelMask Model = maskModel{}

type maskModel struct{}

func (maskModel) Name() string { return "mask" }
func (maskModel) Channels() int { return 0 }

func (maskModel) ToRGB([3]float64) [3]float64 {
	return [3]float64{0, 0, 0}
}

func (maskModel) FromRGB([3]float64) [3]float64 {
	return [3]float64{}
}
