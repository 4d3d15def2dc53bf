package textutil

import (
	"regexp"
	"strings"
)

var whitespaceRegex = regexp.MustCompile(`\s+`)

func NormalizeName(name string) string {
	name = strings.ToLower(name)
	name = strings.Trim(name, " \n\t")
	name = whitespaceRegex.ReplaceAllString(name, "")
	return name
}

func MatchName(name string, matchers []string) bool {
	name = NormalizeName(name)
	for _, m := range matchers {
		if strings.Contains(name, m) {
			return true
		}
	}
	return false
}

var citationRegex = regexp.MustCompile(`\[[^\]]*\]`)

// StripCitations removes bracketed footnote markers like "[1]" or "[note 3]".
func StripCitations(text string) string {
	text = citationRegex.ReplaceAllString(text, "")
	return strings.TrimSpace(text)
}

// StripChars removes every occurrence of each of the given substrings and
// trims surrounding whitespace.
func StripChars(text string, remove ...string) string {
	for _, r := range remove {
		text = strings.ReplaceAll(text, r, "")
	}
	return strings.TrimSpace(text)
}
