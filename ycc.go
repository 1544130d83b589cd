package pix

// ModelYCbCr is the luma/chroma model used by video and JPEG, with the
// full-range ITU-T T.871 matrix. Chroma components are centered at
// one half.
var ModelYCbCr Model = yccModel{}

type yccModel struct{}

func (yccModel) Name() string { return "ycbcr" }
func (yccModel) Channels() int { return 3 }

func (yccModel) ToRGB(c [3]float64) [3]float64 {
	y := c[0]
	cb := c[1] - 0.5
	cr := c[2] - 0.5
	r := y + 1.402*cr
	g := y - 0.344136*cb - 0.714136*cr
	b := y + 1.772*cb
	return [3]float64{clampUnit(r), clampUnit(g), clampUnit(b)}
}

func (yccModel) FromRGB(rgb [3]float64) [3]float64 {
	r, g, b := rgb[0], rgb[1], rgb[2]
	y := 0.299*r + 0.587*g + 0.114*b
	cb := 0.5 - 0.168736*r - 0.331264*g + 0.5*b
	cr := 0.5 + 0.5*r - 0.418688*g - 0.081312*b
	return [3]float64{clampUnit(y), clampUnit(cb), clampUnit(cr)}
}
