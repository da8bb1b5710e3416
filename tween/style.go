package tween

import (
	"fmt"
	"math"
	"strconv"
)

// StyleMap maps a style property name to a value. A value is either numeric
// or a string carrying an optional unit, e.g. "10px".
type StyleMap map[string]any

// Clone returns a shallow copy of the map. A nil map clones to nil.
func (s StyleMap) Clone() StyleMap {
	if s == nil {
		return nil
	}
	out := make(StyleMap, len(s))
	for k, v := range s {
		out[k] = v
	}
	return out
}

// Merge returns a new map holding the entries of s overlaid by those of over.
func (s StyleMap) Merge(over StyleMap) StyleMap {
	out := make(StyleMap, len(s)+len(over))
	for k, v := range s {
		out[k] = v
	}
	for k, v := range over {
		out[k] = v
	}
	return out
}

// FormatValue renders a style value the way it is written onto a style surface.
func FormatValue(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case fmt.Stringer:
		return t.String()
	}
	if f, ok := toFloat(v); ok {
		return FormatNumber(f)
	}
	return fmt.Sprint(v)
}

// FormatNumber renders a float in its shortest form: 15, 15.5, NaN.
func FormatNumber(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	}
	return 0, false
}
