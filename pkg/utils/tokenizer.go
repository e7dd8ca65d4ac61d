package utils

import "strings"

// Tokenize lowercases the text and splits it into terms for lexical scoring.
// Punctuation attached to words is trimmed so "headphones," matches
// "headphones". This is a simple whitespace tokenizer; the lexical index and
// the query must both go through it so term forms line up.
func Tokenize(text string) []string {
	fields := strings.Fields(strings.ToLower(text))
	terms := make([]string, 0, len(fields))
	for _, f := range fields {
		f = strings.Trim(f, ".,;:!?\"'()[]")
		if f != "" {
			terms = append(terms, f)
		}
	}
	return terms
}
