package model

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// DefaultLabeler turns a field name into a display label for fields whose
// schema omits one: "favoriteTreat" becomes "Favorite Treat" and
// "max_height2" becomes "Max Height 2".
func DefaultLabeler(name string) string {
	words := strings.FieldsFunc(name, isSeparator)
	if len(words) == 0 {
		return ""
	}

	var label []string
	for _, word := range words {
		for _, part := range camelParts(word) {
			label = append(label, capitalize(part))
		}
	}
	return strings.Join(label, " ")
}

func isSeparator(r rune) bool {
	return r == '_' || r == '-' || unicode.IsSpace(r)
}

// camelParts splits word where the case or the letter/digit class changes.
func camelParts(word string) []string {
	var parts []string
	start := 0
	for i, r := range word {
		if i == 0 {
			continue
		}
		prev, _ := utf8.DecodeLastRuneInString(word[:i])
		if startsPart(prev, r) {
			parts = append(parts, word[start:i])
			start = i
		}
	}
	return append(parts, word[start:])
}

func startsPart(prev, r rune) bool {
	switch {
	case unicode.IsLower(prev) && unicode.IsUpper(r):
		return true
	case unicode.IsLetter(prev) && unicode.IsDigit(r):
		return true
	case unicode.IsDigit(prev) && unicode.IsLetter(r):
		return true
	}
	return false
}

func capitalize(word string) string {
	first, size := utf8.DecodeRuneInString(word)
	if first == utf8.RuneError {
		return word
	}
	return string(unicode.ToUpper(first)) + word[size:]
}
