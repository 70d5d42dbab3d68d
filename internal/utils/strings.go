// Package utils provides small, generic helper functions used across
// different layers of the application. These utilities are independent
// of domain or business logic.
package utils

import "unicode/utf8"

// TruncateRunes shortens s to at most max runes, appending suffix when the
// string was actually cut. Strings within the limit are returned unchanged.
//
// Example:
//
//	utils.TruncateRunes("hello world", 5, "...") // "hello..."
//	utils.TruncateRunes("hi", 5, "...")          // "hi"
func TruncateRunes(s string, max int, suffix string) string {
	if max <= 0 || utf8.RuneCountInString(s) <= max {
		return s
	}
	return string([]rune(s)[:max]) + suffix
}
