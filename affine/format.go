// SPDX-License-Identifier: MIT

package affine

import (
	"math"
	"strconv"
	"strings"
)

// Exponent-notation bounds for formatCoefficient: magnitudes in
// [fixedNotationMin, fixedNotationMax) print in plain decimal.
const (
	fixedNotationMin = 1e-6
	fixedNotationMax = 1e21
)

// String returns the debug form "(a=1, b=0, c=0, d=1, tx=0, ty=0)".
// The field order and separators are fixed; existing log tooling parses them.
func (m *Matrix) String() string {
	var sb strings.Builder
	sb.Grow(64)
	sb.WriteByte('(')
	for i, f := range [...]struct {
		key string
		v   float64
	}{
		{"a", m.A}, {"b", m.B}, {"c", m.C},
		{"d", m.D}, {"tx", m.Tx}, {"ty", m.Ty},
	} {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(f.key)
		sb.WriteByte('=')
		sb.WriteString(formatCoefficient(f.v))
	}
	sb.WriteByte(')')

	return sb.String()
}

// String returns "(x, y)".
func (p Point) String() string {
	return "(" + formatCoefficient(p.X) + ", " + formatCoefficient(p.Y) + ")"
}

// formatCoefficient renders v as the shortest decimal that round-trips:
// integers carry no fraction, -0 prints as 0, exponent form ("1e-7",
// "1e+21") is used outside [1e-6, 1e21), infinities print as "Infinity".
func formatCoefficient(v float64) string {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "Infinity"
	case math.IsInf(v, -1):
		return "-Infinity"
	case v == 0:
		return "0"
	}

	if abs := math.Abs(v); abs >= fixedNotationMin && abs < fixedNotationMax {
		return strconv.FormatFloat(v, 'f', -1, 64)
	}

	// strconv always writes at least two exponent digits ("1e-07").
	s := strconv.FormatFloat(v, 'e', -1, 64)
	i := strings.IndexByte(s, 'e')
	mant, sign, exp := s[:i], s[i+1], strings.TrimLeft(s[i+2:], "0")

	return mant + "e" + string(sign) + exp
}
