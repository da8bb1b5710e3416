package tween

// An Element is the target whose style an Engine animates.
type Element interface {
	// ComputedStyle returns the currently resolved value of a property.
	ComputedStyle(property string) string
	// ApplyStyle writes a batch of property values onto the element.
	ApplyStyle(style StyleMap)
}
