package naming

import (
	"regexp"
	"strings"
)

var separatorPattern = regexp.MustCompile(`[_\-\s]+`)

// Humanize derives a display label from a field name. Underscores, dashes and
// camelCase boundaries become word breaks and each word is capitalized, so
// "createdAt" and "created_at" both yield "Created At".
func Humanize(name string) string {
	if name == "" {
		return ""
	}

	var words []string
	for _, chunk := range separatorPattern.Split(name, -1) {
		if chunk == "" {
			continue
		}
		words = append(words, splitCamelWords(chunk)...)
	}

	for i, word := range words {
		words[i] = capitalize(word)
	}
	return strings.Join(words, " ")
}

func splitCamelWords(chunk string) []string {
	var words []string
	start := 0
	runes := []rune(chunk)
	for i := 1; i < len(runes); i++ {
		if camelBoundary(runes[i-1], runes[i]) {
			words = append(words, string(runes[start:i]))
			start = i
		}
	}
	words = append(words, string(runes[start:]))
	return words
}

func camelBoundary(prev, cur rune) bool {
	switch {
	case isLower(prev) && isUpper(cur):
		return true
	case isLetter(prev) && isDigit(cur):
		return true
	case isDigit(prev) && isLetter(cur):
		return true
	default:
		return false
	}
}

func isUpper(r rune) bool  { return r >= 'A' && r <= 'Z' }
func isLower(r rune) bool  { return r >= 'a' && r <= 'z' }
func isDigit(r rune) bool  { return r >= '0' && r <= '9' }
func isLetter(r rune) bool { return isUpper(r) || isLower(r) }

func capitalize(word string) string {
	if word == "" {
		return ""
	}
	lower := strings.ToLower(word)
	return strings.ToUpper(lower[:1]) + lower[1:]
}
