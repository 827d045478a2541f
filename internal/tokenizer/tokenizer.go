// Package tokenizer splits raw text into word tokens on ASCII space
// and validates individual terms for use as index/query keys.
package tokenizer

import "strings"

// Tokenize splits text into maximal runs of non-space characters, using
// ASCII space exclusively as the separator (no Unicode-aware folding, no
// punctuation splitting; tabs and newlines stay inside their token and
// are caught later by IsValidTerm). Empty tokens are never emitted.
// Tokenize does not validate its output; validation is the caller's
// responsibility via IsValidTerm.
func Tokenize(text string) []string {
	fields := strings.FieldsFunc(text, func(r rune) bool { return r == ' ' })
	tokens := make([]string, 0, len(fields)) // empty slice, not nil, when text is blank
	tokens = append(tokens, fields...)
	return tokens
}

// IsValidTerm reports whether term may be used as an index or query key:
// it must be non-empty, contain no ASCII control byte (including space),
// must not equal "-" exactly, and must not begin with "--".
func IsValidTerm(term string) bool {
	if term == "" {
		return false
	}
	if term == "-" {
		return false
	}
	if strings.HasPrefix(term, "--") {
		return false
	}
	for i := 0; i < len(term); i++ {
		if term[i] <= 0x20 {
			return false
		}
	}
	return true
}
