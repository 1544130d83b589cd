package pix

// Hue-based models (HSV, HSL, HWB) share the hexcone decomposition:
// hue is stored as a fraction of the full circle (1.0 wraps to 0.0),
// split into six 60-degree sectors starting at red.

// hexconeRGB converts a hue fraction and chroma into base red, green
// and blue components, before the lightness offset is added.
func hexconeRGB(hue, chroma float64) (r, g, b float64) {
	hp := hue * 6 // 0.0..=6.0
	sector := int(hp)
	hf := hp - float64(sector)
	secondary := chroma * hf
	inverse := chroma * (1 - hf)
	switch sector {
	case 1:
		return inverse, chroma, 0
	case 2:
		return 0, chroma, secondary
	case 3:
		return 0, inverse, chroma
	case 4:
		return secondary, 0, chroma
	case 5:
		return chroma, 0, inverse
	default: // sector 0, and 6 wrapping back to red
		return chroma, secondary, 0
	}
}

// rgbToHueChromaValue decomposes red, green and blue into the hue
// fraction, chroma and maximum value. Zero chroma yields hue 0.
func rgbToHueChromaValue(r, g, b float64) (hue, chroma, val float64) {
	val = max(r, g, b)
	chroma = val - min(r, g, b)
	if chroma <= 0 {
		return 0, 0, val
	}
	switch val {
	case r:
		if g >= b {
			hue = (g - b) / chroma
		} else {
			hue = 6 - (b-g)/chroma
		}
	case g:
		hue = 2 + (b-r)/chroma
	default:
		hue = 4 + (r-g)/chroma
	}
	hue /= 6
	if hue >= 1 {
		hue -= 1
	}
	return hue, chroma, val
}

// ModelHSV is the hue, saturation, value hexcone model (also known as
// HSB).
var ModelHSV Model = hsvModel{}

// ModelHSL is the hue, saturation, lightness bi-hexcone model.
var ModelHSL Model = hslModel{}

type hsvModel struct{}

func (hsvModel) Name() string { return "hsv" }
func (hsvModel) Channels() int { return 3 }

func (hsvModel) ToRGB(c [3]float64) [3]float64 {
	hue, sat, val := c[0], c[1], c[2]
	chroma := val * sat
	r, g, b := hexconeRGB(hue, chroma)
	m := val - chroma
	return [3]float64{clampUnit(r + m), clampUnit(g + m), clampUnit(b + m)}
}

func (hsvModel) FromRGB(rgb [3]float64) [3]float64 {
	hue, chroma, val := rgbToHueChromaValue(rgb[0], rgb[1], rgb[2])
	sat := 0.0
	if val > 0 {
		sat = chroma / val
	}
	return [3]float64{hue, clampUnit(sat), clampUnit(val)}
}

type hslModel struct{}

func (hslModel) Name() string { return "hsl" }
func (hslModel) Channels() int { return 3 }

func (hslModel) ToRGB(c [3]float64) [3]float64 {
	hue, sat, light := c[0], c[1], c[2]
	chroma := (1 - abs(2*light-1)) * sat
	r, g, b := hexconeRGB(hue, chroma)
	m := light - chroma/2
	return [3]float64{clampUnit(r + m), clampUnit(g + m), clampUnit(b + m)}
}

func (hslModel) FromRGB(rgb [3]float64) [3]float64 {
	hue, chroma, val := rgbToHueChromaValue(rgb[0], rgb[1], rgb[2])
	light := val - chroma/2
	sat := 0.0
	if d := 1 - abs(2*light-1); d > 0 {
		sat = chroma / d
	}
	return [3]float64{hue, clampUnit(sat), clampUnit(light)}
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
