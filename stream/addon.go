package stream

import (
	"fmt"

	"github.com/matt-g-everett/styletx/tween"
	"github.com/matt-g-everett/styletx/tween/coloraddon"
)

// Colour addon names accepted in the config.
const (
	AddonRGB = "rgb"
	AddonHCL = "hcl"
)

// NewAddon returns the colour addon registered under name. An empty name
// selects the RGB addon.
func NewAddon(name string) (tween.Addon, error) {
	switch name {
	case "", AddonRGB:
		return coloraddon.New(), nil
	case AddonHCL:
		return coloraddon.NewHcl(), nil
	}
	return nil, fmt.Errorf("unknown colour addon %q", name)
}
