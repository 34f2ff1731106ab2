package utils

import (
	"math"
	"unicode"
	"unicode/utf8"
)

// RoundHalfUp rounds to the nearest integer, halves towards +Inf.
// -2.5 becomes -2, unlike math.Round.
func RoundHalfUp(value float64) int {
	return int(math.Floor(value + 0.5))
}

// CapitalizeFirst upper-cases the first character and leaves the rest alone
func CapitalizeFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
