package tween

import (
	"errors"
	"math"
	"regexp"
	"strconv"
	"strings"
)

var (
	unitPattern  = regexp.MustCompile(`px|vw|vh|em|rem|%`)
	floatPattern = regexp.MustCompile(`^[+-]?(Infinity|(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?)`)
)

// SplitValueWithUnit splits a style value into its magnitude and unit. Strings
// are scanned for the first unit token; the unit is removed and the rest is
// parsed as a float. Numbers have no unit. Anything unparseable yields NaN.
func SplitValueWithUnit(value any) (float64, string) {
	s, ok := value.(string)
	if !ok {
		if f, ok := toFloat(value); ok {
			return f, ""
		}
		return math.NaN(), ""
	}

	unit := unitPattern.FindString(s)
	return parseFloatPrefix(strings.Replace(s, unit, "", 1)), unit
}

// parseFloatPrefix parses the longest leading float in s, ignoring leading
// whitespace and any trailing garbage.
func parseFloatPrefix(s string) float64 {
	m := floatPattern.FindString(strings.TrimSpace(s))
	if m == "" {
		return math.NaN()
	}

	switch strings.TrimLeft(m, "+-") {
	case "Infinity":
		if strings.HasPrefix(m, "-") {
			return math.Inf(-1)
		}
		return math.Inf(1)
	}

	f, err := strconv.ParseFloat(m, 64)
	if err != nil {
		// Out of range exponents still carry a usable value.
		if errors.Is(err, strconv.ErrRange) {
			return f
		}
		return math.NaN()
	}
	return f
}

// IsColorProperty reports whether a property is colour valued. The check is
// purely syntactic: the name must end with "color", ignoring case.
func IsColorProperty(property string) bool {
	return strings.HasSuffix(strings.ToLower(property), "color")
}
