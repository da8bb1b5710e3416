package tween

// ColorAddonName is the registry key the engine resolves colour transitions by.
const ColorAddonName = "ColorAddon"

// An Addon supplies interpolation for colour valued properties.
type Addon interface {
	// ToRgb normalises a colour string to rgb(r, g, b) form.
	ToRgb(color string) string
	// InterpolateRgb returns a function mapping progress in [0,1] to a colour
	// between two rgb(r, g, b) strings.
	InterpolateRgb(from, to string) func(progress float64) string
}

// Addons maps capability names to addon implementations.
type Addons map[string]Addon

// Merge returns a copy of a with the entries of b added, b winning on conflict.
func (a Addons) Merge(b Addons) Addons {
	out := make(Addons, len(a)+len(b))
	for name, addon := range a {
		out[name] = addon
	}
	for name, addon := range b {
		out[name] = addon
	}
	return out
}
