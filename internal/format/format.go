// Package format holds the pure display-formatting helpers for numeric
// values and operand labels.
package format

import (
	"math/big"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
)

// ResultWidth is the longest plain result before the formatter falls
// back to exponential notation.
const ResultWidth = 12

// Group inserts thousands separators into the integer part of a decimal
// string. The fractional part is preserved verbatim and strings already
// in exponential notation are returned unchanged. Group is idempotent:
// existing separators are stripped before regrouping, never appended to.
func Group(s string) string {
	if s == "" || strings.ContainsAny(s, "eE") {
		return s
	}
	clean := strings.ReplaceAll(s, ",", "")
	rest := clean
	sign := ""
	if strings.HasPrefix(rest, "-") {
		sign = "-"
		rest = rest[1:]
	}
	intPart, frac, hasFrac := strings.Cut(rest, ".")
	if !isDigits(intPart) {
		return s
	}
	n, ok := new(big.Int).SetString(intPart, 10)
	if !ok {
		return s
	}
	out := sign + humanize.BigComma(n)
	if hasFrac {
		out += "." + frac
	}
	return out
}

// Ungroup strips thousands separators, returning canonical numeric text.
func Ungroup(s string) string {
	return strings.ReplaceAll(s, ",", "")
}

// Canonical renders a computed value as canonical operand text. Results
// wider than ResultWidth characters fall back to exponential notation
// with six fraction digits.
func Canonical(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if len(s) > ResultWidth {
		s = strconv.FormatFloat(v, 'e', 6, 64)
	}
	return s
}

// NumberLabel composes the number line shown for an operand: the grouped
// value followed by its unit, if any.
func NumberLabel(value, unit string) string {
	g := Group(value)
	if unit == "" {
		return g
	}
	return g + " " + unit
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
