package entities

import (
	"strings"
	"unicode"
)

// NormalizePlate converts a raw licence plate (or any plate-like string) into
// the canonical form used as a join/match key: all whitespace removed,
// uppercased. "1ab 2345" and "1AB2345" normalize to the same key.
//
// An empty input normalizes to "" and an empty key must never be used for
// matching; lookup maps skip it.
func NormalizePlate(raw string) string {
	var b strings.Builder
	b.Grow(len(raw))
	for _, r := range raw {
		if unicode.IsSpace(r) {
			continue
		}
		b.WriteRune(unicode.ToUpper(r))
	}
	return b.String()
}
