package pix

// Model is a color model: it declares how many color channels a pixel
// carries and how those channels convert to and from the hub
// representation, linear RGB working values in [0, 1].
//
// Every model defines only the two hub conversions; converting between
// two arbitrary models routes through the hub. The set of models is
// closed: RGB, BGR, CMY, Gray, HSV, HSL, HWB, YCbCr, Oklab, XYZ and
// Mask.
type Model interface {
	// Name identifies the model, e.g. "rgb". Formats compare models
	// by name.
	Name() string

	// Channels is the number of color channels, not counting alpha.
	// Mask has zero.
	Channels() int

	// ToRGB converts model components to RGB working values. Unused
	// component slots are zero.
	ToRGB(c [3]float64) [3]float64

	// FromRGB converts RGB working values to model components.
	FromRGB(rgb [3]float64) [3]float64
}

// clampUnit restricts a working value to [0, 1].
func clampUnit(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
