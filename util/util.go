package util

import (
	"strings"
	"unicode"

	"golang.org/x/exp/constraints"
)

// Flatten strips the insignificant whitespace from a raw song: everything
// unicode considers a space except the '\n' staff separators. CRLF line
// endings collapse to plain '\n'.
func Flatten(raw string) string {
	var b strings.Builder
	b.Grow(len(raw))
	for _, r := range raw {
		if r != '\n' && unicode.IsSpace(r) {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func GetKeys[A constraints.Ordered, B any](m map[A]B) []A {
	keys := make([]A, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	return keys
}

func Min[A constraints.Integer](num1 A, num2 A) A {
	if num1 > num2 {
		return num2
	}
	return num1
}
