// Package stringtest holds helpers for building expected text in tests.
package stringtest

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// JoinLF joins multiple strings with LF line endings.
// Use this to construct expected multi-line output row by row.
//
// Example:
//
//	want := stringtest.JoinLF(
//		"@@",
//		"..",
//	) // -> "@@\n.."
func JoinLF(ss ...string) string {
	return strings.Join(ss, "\n")
}

// StripANSI removes every ANSI escape sequence from s, leaving only the
// printable glyphs.
func StripANSI(s string) string {
	return ansi.Strip(s)
}
