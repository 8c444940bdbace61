// Package slug converts display labels to URL tokens and back.
package slug

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const Separator = "-"

// FromName lowercases text and replaces every space with Separator.
func FromName(text string) string {
	return strings.ReplaceAll(strings.ToLower(text), " ", Separator)
}

// ToName reverses FromName heuristically: separators become spaces and every
// word is capitalised. Names with irregular capitalisation do not round-trip.
func ToName(text string) string {
	text = strings.ReplaceAll(strings.TrimSpace(text), Separator, " ")
	words := strings.Fields(text)
	// cases.Caser keeps state, so one per call.
	caser := cases.Title(language.English)
	for i, w := range words {
		words[i] = caser.String(w)
	}
	return strings.Join(words, " ")
}
