package pix

// ModelHWB is the hue, whiteness, blackness model. Whiteness is the
// amount of white mixed into a pure hue, blackness the amount of
// black. When whiteness + blackness exceeds 1 the pair is normalized
// at the same ratio before conversion.
var ModelHWB Model = hwbModel{}

type hwbModel struct{}

func (hwbModel) Name() string { return "hwb" }
func (hwbModel) Channels() int { return 3 }

func (hwbModel) ToRGB(c [3]float64) [3]float64 {
	hue := c[0]
	white, black := c[1], c[2]
	if sum := white + black; sum > 1 {
		white /= sum
		black /= sum
	}
	val := 1 - black
	chroma := val - white
	r, g, b := hexconeRGB(hue, chroma)
	m := val - chroma // equals whiteness
	return [3]float64{clampUnit(r + m), clampUnit(g + m), clampUnit(b + m)}
}

func (hwbModel) FromRGB(rgb [3]float64) [3]float64 {
	hue, chroma, val := rgbToHueChromaValue(rgb[0], rgb[1], rgb[2])
	white := val - chroma
	black := 1 - val
	return [3]float64{hue, clampUnit(white), clampUnit(black)}
}
