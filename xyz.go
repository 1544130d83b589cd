package pix

// ModelXYZ is the CIE XYZ tristimulus model under the sRGB D65 white
// point. Components are stored as unit fractions of the nominal
// range; the Z of near-white colors exceeds one and clamps, so a
// white round trip is slightly lossy.
var ModelXYZ Model = xyzModel{}

type xyzModel struct{}

func (xyzModel) Name() string { return "xyz" }
func (xyzModel) Channels() int { return 3 }

func (xyzModel) ToRGB(c [3]float64) [3]float64 {
	x, y, z := c[0], c[1], c[2]
	r := 3.2406*x - 1.5372*y - 0.4986*z
	g := -0.9689*x + 1.8758*y + 0.0415*z
	b := 0.0557*x - 0.2040*y + 1.0570*z
	return [3]float64{clampUnit(r), clampUnit(g), clampUnit(b)}
}

func (xyzModel) FromRGB(rgb [3]float64) [3]float64 {
	r, g, b := rgb[0], rgb[1], rgb[2]
	x := 0.4124*r + 0.3576*g + 0.1805*b
	y := 0.2126*r + 0.7152*g + 0.0722*b
	z := 0.0193*r + 0.1192*g + 0.9505*b
	return [3]float64{clampUnit(x), clampUnit(y), clampUnit(z)}
}
