package pricing

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// lowerLikeBrowser lowercases s with the full Unicode mapping browsers use
// for String.prototype.toLowerCase. Unlike strings.ToLower it maps U+0130 to
// "i" plus U+0307 and a word-final capital sigma to "ς".
func lowerLikeBrowser(s string) string {
	// A Caser keeps state between calls, so each call gets its own.
	return cases.Lower(language.Und).String(s)
}
