package match

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

var whitespaceRe = regexp.MustCompile(`\s+`)

// Stop words to filter out during tokenization
var stopWords = map[string]bool{
	"the": true, "a": true, "an": true, "be": true, "is": true, "are": true,
	"was": true, "to": true, "of": true, "and": true, "in": true, "that": true,
	"have": true, "it": true, "for": true, "not": true, "on": true, "with": true,
	"as": true, "you": true, "do": true, "at": true, "this": true, "but": true,
	"by": true, "from": true,
}

// Normalize canonicalizes text for comparison: NFKC normalization,
// lowercasing, trimming, and whitespace collapsing. Two strings that render
// the same normalize the same.
func Normalize(text string) string {
	text = norm.NFKC.String(text)
	text = strings.ToLower(strings.TrimSpace(text))
	return whitespaceRe.ReplaceAllString(text, " ")
}

// tokenize splits normalized text into keyword tokens, trimming punctuation
// and dropping stop words and fragments shorter than three runes.
func tokenize(text string) []string {
	words := strings.Fields(Normalize(text))
	filtered := make([]string, 0, len(words))

	for _, word := range words {
		cleaned := strings.Trim(word, ".,!?;:'\"-()[]{}")
		if cleaned == "" || stopWords[cleaned] {
			continue
		}
		if utf8.RuneCountInString(cleaned) < 3 {
			continue
		}
		filtered = append(filtered, cleaned)
	}

	return filtered
}

// wordSet builds a membership set from tokens.
func wordSet(words []string) map[string]bool {
	set := make(map[string]bool, len(words))
	for _, word := range words {
		set[word] = true
	}
	return set
}
