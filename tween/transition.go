package tween

// A Transition is the per-property interpolation plan built once at run start.
type Transition interface {
	Property() string
	// At computes the property value at progress. It has no side effects.
	At(progress float64) string
}

// ColorTransition interpolates a colour through an addon supplied function.
type ColorTransition struct {
	Prop            string
	ProgressToColor func(progress float64) string
}

// Property returns the animated property name.
func (c ColorTransition) Property() string {
	return c.Prop
}

// At returns the colour at progress.
func (c ColorTransition) At(progress float64) string {
	return c.ProgressToColor(progress)
}

// ShapeTransition linearly interpolates a numeric value carrying a unit.
type ShapeTransition struct {
	Prop string
	From float64
	Diff float64
	Unit string
}

// Property returns the animated property name.
func (s ShapeTransition) Property() string {
	return s.Prop
}

// At returns From + Diff*progress with the unit appended.
func (s ShapeTransition) At(progress float64) string {
	return FormatNumber(s.From+s.Diff*progress) + s.Unit
}

// NewColorTransition builds a colour transition using addon to normalise both
// ends and produce the interpolation function.
func NewColorTransition(property string, from, to any, addon Addon) ColorTransition {
	fromRgb := addon.ToRgb(FormatValue(from))
	toRgb := addon.ToRgb(FormatValue(to))
	return ColorTransition{
		Prop:            property,
		ProgressToColor: addon.InterpolateRgb(fromRgb, toRgb),
	}
}

// NewShapeTransition builds a numeric transition. The unit is taken from the
// to value only; a differing from unit is ignored.
func NewShapeTransition(property string, from, to any) ShapeTransition {
	fromValue, _ := SplitValueWithUnit(from)
	toValue, unit := SplitValueWithUnit(to)
	return ShapeTransition{
		Prop: property,
		From: fromValue,
		Diff: toValue - fromValue,
		Unit: unit,
	}
}

// Interpolate evaluates every transition at progress into one style batch.
func Interpolate(transitions []Transition, progress float64) StyleMap {
	out := make(StyleMap, len(transitions))
	for _, t := range transitions {
		out[t.Property()] = t.At(progress)
	}
	return out
}
