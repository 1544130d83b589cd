package pix

// ModelRGB is the red, green, blue color model. It is the hub model:
// its conversions are the identity.
var ModelRGB Model = rgbModel{}

// ModelBGR is RGB with reversed channel order in storage: blue, green,
// red. Useful for buffers shared with BGR-native consumers.
var ModelBGR Model = bgrModel{}

type rgbModel struct{}

func (rgbModel) Name() string { return "rgb" }
func (rgbModel) Channels() int { return 3 }

func (rgbModel) ToRGB(c [3]float64) [3]float64 { return c }

func (rgbModel) FromRGB(rgb [3]float64) [3]float64 { return rgb }

type bgrModel struct{}

func (bgrModel) Name() string { return "bgr" }
func (bgrModel) Channels() int { return 3 }

func (bgrModel) ToRGB(c [3]float64) [3]float64 {
	return [3]float64{c[2], c[1], c[0]}
}

func (bgrModel) FromRGB(rgb [3]float64) [3]float64 {
	return [3]float64{rgb[2], rgb[1], rgb[0]}
}
