package pix

import "math"

// ModelOklab is the Oklab perceptual lightness model. Components are
// lightness L and the green/red and blue/yellow opponents a and b.
// The opponents are signed and stay within about ±0.4 for in-gamut
// colors; like the chroma components of YCbCr they are centered at
// one half so every depth can store them.
var ModelOklab Model = oklabModel{}

type oklabModel struct{}

func (oklabModel) Name() string { return "oklab" }
func (oklabModel) Channels() int { return 3 }

func (oklabModel) ToRGB(c [3]float64) [3]float64 {
	ll := c[0]
	la := c[1] - 0.5
	lb := c[2] - 0.5
	l := ll + 0.3963377774*la + 0.2158037573*lb
	m := ll - 0.1055613458*la - 0.0638541728*lb
	s := ll - 0.0894841775*la - 1.2914855480*lb
	l, m, s = l*l*l, m*m*m, s*s*s
	r := 4.0767416621*l - 3.3077115913*m + 0.2309699292*s
	g := -1.2684380046*l + 2.6097574011*m - 0.3413193965*s
	b := -0.0041960863*l - 0.7034186147*m + 1.7076147010*s
	return [3]float64{clampUnit(r), clampUnit(g), clampUnit(b)}
}

func (oklabModel) FromRGB(rgb [3]float64) [3]float64 {
	r, g, b := rgb[0], rgb[1], rgb[2]
	l := math.Cbrt(0.4122214708*r + 0.5363325363*g + 0.0514459929*b)
	m := math.Cbrt(0.2119034982*r + 0.6806995451*g + 0.1073969566*b)
	s := math.Cbrt(0.0883024619*r + 0.2817188376*g + 0.6299787005*b)
	ll := 0.2104542553*l + 0.7936177850*m - 0.0040720468*s
	la := 1.9779984951*l - 2.4285922050*m + 0.4505937099*s
	lb := 0.0259040371*l + 0.7827717662*m - 0.8086757660*s
	return [3]float64{clampUnit(ll), clampUnit(la + 0.5), clampUnit(lb + 0.5)}
}
