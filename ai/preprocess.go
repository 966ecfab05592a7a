package ai

import (
	"strings"
	"unicode"

	porterstemmer "github.com/blevesearch/go-porterstemmer"
)

// minTokenLength is exclusive: stems of this length or shorter are dropped.
const minTokenLength = 2

// Preprocess lowercases the text, strips everything but ASCII word characters
// and whitespace, stems each word and keeps the stems longer than two bytes.
func Preprocess(text string) []string {
	cleaned := strings.Map(func(r rune) rune {
		if isWordRune(r) || unicode.IsSpace(r) {
			return r
		}
		return -1
	}, strings.ToLower(text))

	words := strings.Fields(cleaned)
	tokens := make([]string, 0, len(words))
	for _, w := range words {
		stem := porterstemmer.StemString(w)
		if len(stem) > minTokenLength {
			tokens = append(tokens, stem)
		}
	}
	return tokens
}

// isWordRune matches the \w class: [A-Za-z0-9_].
func isWordRune(r rune) bool {
	return r == '_' ||
		(r >= 'a' && r <= 'z') ||
		(r >= 'A' && r <= 'Z') ||
		(r >= '0' && r <= '9')
}
