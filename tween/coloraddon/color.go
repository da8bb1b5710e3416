// Package coloraddon provides the colour addons used by tween engines to
// interpolate colour valued properties.
package coloraddon

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/matt-g-everett/styletx/tween"
)

var hexPattern = regexp.MustCompile(`^#([A-Fa-f0-9]{6}|[A-Fa-f0-9]{3})$`)

// RGB is the default colour addon. It interpolates each sRGB channel linearly.
type RGB struct{}

var _ tween.Addon = (*RGB)(nil)

// New creates an instance of the default colour addon.
func New() *RGB {
	return new(RGB)
}

// IsHex reports whether s is a #RGB or #RRGGBB colour.
func IsHex(s string) bool {
	return hexPattern.MatchString(s)
}

// ToRgb converts a hex colour to rgb(r, g, b). Anything else is returned as is.
func (RGB) ToRgb(color string) string {
	if !IsHex(color) {
		return color
	}

	c, err := colorful.Hex(color)
	if err != nil {
		return color
	}
	r, g, b := c.RGB255()
	return FormatRgb(float64(r), float64(g), float64(b))
}

// ToHex converts an rgb(r, g, b) colour to #rrggbb. Hex input is returned as is.
func (RGB) ToHex(color string) string {
	if IsHex(color) {
		return color
	}

	ch := SplitRgb(color)
	c := colorful.Color{R: ch[0] / 255.0, G: ch[1] / 255.0, B: ch[2] / 255.0}
	return c.Clamped().Hex()
}

// InterpolateRgb returns a function producing the colour at progress between
// two rgb(r, g, b) strings. Progress is not clamped.
func (RGB) InterpolateRgb(from, to string) func(progress float64) string {
	f := SplitRgb(from)
	t := SplitRgb(to)

	return func(progress float64) string {
		return FormatRgb(
			lerpChannel(f[0], t[0], progress),
			lerpChannel(f[1], t[1], progress),
			lerpChannel(f[2], t[2], progress),
		)
	}
}

// lerpChannel rounds half up, so 127.5 becomes 128.
func lerpChannel(from, to, progress float64) float64 {
	return math.Floor(from + (to-from)*progress + 0.5)
}

// SplitRgb parses the three channels of an rgb(r, g, b) string. Missing
// channels read as NaN.
func SplitRgb(rgb string) [3]float64 {
	s := strings.Replace(rgb, "rgb(", "", 1)
	s = strings.Replace(s, ")", "", 1)
	parts := strings.Split(s, ",")

	var out [3]float64
	for i := range out {
		if i >= len(parts) {
			out[i] = math.NaN()
			continue
		}
		out[i] = parseChannel(parts[i])
	}
	return out
}

func parseChannel(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return math.NaN()
	}
	return f
}

// FormatRgb renders three channels as rgb(r, g, b).
func FormatRgb(r, g, b float64) string {
	return "rgb(" + tween.FormatNumber(r) + ", " + tween.FormatNumber(g) + ", " + tween.FormatNumber(b) + ")"
}
