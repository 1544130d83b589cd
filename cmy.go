package pix

// ModelCMY is the subtractive cyan, magenta, yellow color model. Each
// component is the complement of the matching RGB component, so the
// conversion is exactly invertible.
var ModelCMY Model = cmyModel{}

type cmyModel struct{}

func (cmyModel) Name() string { return "cmy" }
func (cmyModel) Channels() int { return 3 }

func (cmyModel) ToRGB(c [3]float64) [3]float64 {
	return [3]float64{1 - c[0], 1 - c[1], 1 - c[2]}
}

func (cmyModel) FromRGB(rgb [3]float64) [3]float64 {
	return [3]float64{1 - rgb[0], 1 - rgb[1], 1 - rgb[2]}
}
