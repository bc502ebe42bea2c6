package table

import (
	"unicode"

	"github.com/clipperhouse/uax29/v2/graphemes"
	"github.com/mattn/go-runewidth"
	"github.com/muesli/reflow/ansi"
)

// Width is the default [WidthFunc]. It counts grapheme clusters, and
// counts every cluster twice when the string contains Hangul, which
// renders double-width in monospace terminals. The doubling applies to
// the whole string: a cell is assumed to be uniformly single- or
// double-width, so strings mixing Hangul with Latin text measure wide.
// Combining marks, emoji, and other wide scripts are not handled; this
// is a deliberate approximation, not a Unicode display-width
// algorithm. Use [DisplayWidth] for East-Asian-aware measurement.
func Width(s string) int {
	n := 0
	g := graphemes.FromString(s)
	for g.Next() {
		n++
	}
	if containsHangul(s) {
		return n * 2
	}
	return n
}

func containsHangul(s string) bool {
	for _, r := range s {
		if unicode.Is(unicode.Hangul, r) {
			return true
		}
	}
	return false
}

// DisplayWidth measures East-Asian display width, counting wide and
// fullwidth runes as two columns.
func DisplayWidth(s string) int {
	return runewidth.StringWidth(s)
}

// PrintableWidth measures display width ignoring ANSI escape
// sequences, letting styled cells align with unstyled ones.
func PrintableWidth(s string) int {
	return ansi.PrintableRuneWidth(s)
}
