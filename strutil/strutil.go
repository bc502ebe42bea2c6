// Package strutil provides small string helpers shared across tools:
// pluralized count formatting and ANSI escape stripping.
package strutil

import (
	"fmt"
	"regexp"
	"strings"
)

var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;?]*[ -/]*[@-~]`)

// StripANSI removes ANSI CSI escape sequences (colors, cursor movement)
// from s. Non-CSI escapes are left alone.
func StripANSI(s string) string {
	if !strings.ContainsRune(s, '\x1b') {
		return s
	}
	return ansiPattern.ReplaceAllString(s, "")
}

// Pluralize formats a count with its unit, appending "s" unless the
// count is exactly one: "1 file", "3 files", "0 files".
func Pluralize(n int, singular string) string {
	return PluralizeWith(n, singular, singular+"s")
}

// PluralizeWith is Pluralize with an explicit plural form, for units
// that don't pluralize with a trailing "s": "2 entries", "1 entry".
func PluralizeWith(n int, singular, plural string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, singular)
	}
	return fmt.Sprintf("%d %s", n, plural)
}
