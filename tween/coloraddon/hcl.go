package coloraddon

import (
	"github.com/lucasb-eyer/go-colorful"
	"github.com/matt-g-everett/styletx/tween"
)

// HCL is a colour addon that blends through CIE-HCL space, which keeps
// perceived lightness steady across the transition.
type HCL struct {
	RGB
}

var _ tween.Addon = (*HCL)(nil)

// NewHcl creates an instance of the HCL colour addon.
func NewHcl() *HCL {
	return new(HCL)
}

// InterpolateRgb returns a function producing the colour at progress between
// two rgb(r, g, b) strings, blended by hue, chroma and luminance.
func (HCL) InterpolateRgb(from, to string) func(progress float64) string {
	f := SplitRgb(from)
	t := SplitRgb(to)
	c1 := colorful.Color{R: f[0] / 255.0, G: f[1] / 255.0, B: f[2] / 255.0}
	c2 := colorful.Color{R: t[0] / 255.0, G: t[1] / 255.0, B: t[2] / 255.0}

	return func(progress float64) string {
		// Endpoints are returned exactly.
		switch progress {
		case 0:
			return FormatRgb(f[0], f[1], f[2])
		case 1:
			return FormatRgb(t[0], t[1], t[2])
		}

		r, g, b := c1.BlendHcl(c2, progress).Clamped().RGB255()
		return FormatRgb(float64(r), float64(g), float64(b))
	}
}
