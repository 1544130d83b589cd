package pix

// ModelGray is the single-channel luminance model. Conversion from RGB
// uses the Rec. 709 luma weights on the working values; conversion to
// RGB broadcasts the value to all three hub channels.
var ModelGray Model = grayModel{}

// Rec. 709 luma coefficients.
const (
	lumaRed   = 0.2126
	lumaGreen = 0.7152
	lumaBlue  = 0.0722
)

type grayModel struct{}

func (grayModel) Name() string { return "gray" }
func (grayModel) Channels() int { return 1 }

func (grayModel) ToRGB(c [3]float64) [3]float64 {
	return [3]float64{c[0], c[0], c[0]}
}

func (grayModel) FromRGB(rgb [3]float64) [3]float64 {
	v := lumaRed*rgb[0] + lumaGreen*rgb[1] + lumaBlue*rgb[2]
	return [3]float64{clampUnit(v)}
}
