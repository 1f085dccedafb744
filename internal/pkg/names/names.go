// Package names sanitizes warband names and resolves uniqueness clashes
package names

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// MaxLength is the longest sanitized name we accept.
const MaxLength = 50

// Sanitize trims, collapses internal whitespace, strips control characters,
// and truncates to MaxLength. Control runes become spaces before the
// collapse so tabs and newlines still separate words.
func Sanitize(name string) string {
	cleaned := strings.Map(func(r rune) rune {
		if unicode.IsControl(r) {
			return ' '
		}
		return r
	}, name)
	cleaned = strings.Join(strings.Fields(cleaned), " ")
	return truncate(cleaned, MaxLength)
}

// EnsureUnique returns name if no existing name matches it
// case-insensitively, otherwise the first "name (2)", "name (3)", ... that
// is free, shortening the base so the candidate stays within MaxLength.
// The existing set is treated as a static snapshot.
func EnsureUnique(name string, existing []string) string {
	taken := make(map[string]struct{}, len(existing))
	for _, e := range existing {
		taken[strings.ToLower(strings.TrimSpace(e))] = struct{}{}
	}

	if _, ok := taken[strings.ToLower(name)]; !ok {
		return name
	}
	for i := 2; ; i++ {
		suffix := fmt.Sprintf(" (%d)", i)
		candidate := truncate(name, MaxLength-len(suffix)) + suffix
		if _, ok := taken[strings.ToLower(candidate)]; !ok {
			return candidate
		}
	}
}

// truncate cuts s to at most max bytes without splitting a multi-byte rune,
// then drops any whitespace the cut exposed at the end.
func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	for max > 0 && !utf8.RuneStart(s[max]) {
		max--
	}
	return strings.TrimRight(s[:max], " ")
}
