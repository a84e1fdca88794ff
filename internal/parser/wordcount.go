package parser

import "strings"

// WordCount splits s on runs of whitespace, drops empty tokens and counts the rest.
// Whitespace is the ECMAScript \s class, not unicode.IsSpace: U+FEFF separates
// words and U+0085 does not.
func WordCount(s string) int {
	return len(strings.FieldsFunc(s, isWordSeparator))
}

func isWordSeparator(r rune) bool {
	switch r {
	case '\t', '\n', '\v', '\f', '\r', ' ',
		'\u00a0', '\u1680', '\u2028', '\u2029', '\u202f', '\u205f', '\u3000', '\ufeff':
		return true
	}
	return r >= '\u2000' && r <= '\u200a'
}
