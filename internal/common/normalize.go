package common

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// NormalizeName builds the comparison key used to match a human-entered
// base name against file names on disk. The key is never displayed.
//
// Typographic dashes become '-', non-breaking spaces become ' ', the result
// is lowercased and whitespace runs collapse to a single space. Input is
// NFC-composed first so names copied from macOS (NFD) compare equal.
func NormalizeName(s string) string {
	if s == "" {
		return ""
	}
	s = norm.NFC.String(s)
	s = strings.Map(foldRune, s)
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}

func foldRune(r rune) rune {
	switch r {
	case '\u00a0', '\u2007', '\u202f':
		return ' '
	case '\u2010', // hyphen
		'\u2011', // non-breaking hyphen
		'\u2012', // figure dash
		'\u2013', // en dash
		'\u2014', // em dash
		'\u2015', // horizontal bar
		'\u2212', // minus sign
		'\ufe58', // small em dash
		'\ufe63', // small hyphen-minus
		'\uff0d': // fullwidth hyphen-minus
		return '-'
	}
	return r
}

// IsSafeIdentifier reports whether id can be joined onto a directory path
// without escaping it.
func IsSafeIdentifier(id string) bool {
	if strings.TrimSpace(id) == "" {
		return false
	}
	if strings.ContainsAny(id, `/\`) || strings.Contains(id, "..") {
		return false
	}
	return id != "."
}
