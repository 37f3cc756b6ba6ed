package domain

import (
	"strings"

	"golang.org/x/text/cases"
)

// NormalizeText prepares text for case-insensitive comparison:
//   - trims leading/trailing whitespace
//   - applies Unicode case folding
//   - compresses runs of whitespace into one space
//
// Diacritics, hyphens, and apostrophes are preserved.
func NormalizeText(text string) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return ""
	}
	// Caser values are stateful; never share one across goroutines.
	text = cases.Fold().String(text)

	return strings.Join(strings.Fields(text), " ")
}

// JoinKey is the normalized (owner surname, magic word) pair that must be
// unique among active exchanges.
func JoinKey(ownerLastName, magicWord string) string {
	return NormalizeText(ownerLastName) + "|" + NormalizeText(magicWord)
}

// ParticipantNameKey normalizes a participant's full name for lookup.
func ParticipantNameKey(firstName, lastName string) string {
	return NormalizeText(firstName + " " + lastName)
}
