// Package extract turns raw message text into candidate numbers.
// It only honors a number anchored at the start of the cleaned text;
// nothing mid-string counts.
package extract

import (
	"strconv"
	"strings"
)

// emphasisRunes are markup decorations commonly wrapped around numbers
// ("**42**", "__3__", "`7`"). A leading run of these is ignored.
const emphasisRunes = "*_~`"

// sigilPrefixes mark platform-generated tokens (mentions, channel refs,
// emotes, shortcodes). Their payload contains digit runs that must never
// be read as counts, so sigil-prefixed messages skip extraction entirely.
var sigilPrefixes = []string{"<@", "<#", "<&", "<a:", "<:", ":"}

// HasSigilPrefix reports whether the trimmed text starts with a platform
// mention/emote/markup sigil.
func HasSigilPrefix(text string) bool {
	trimmed := strings.TrimSpace(text)
	for _, prefix := range sigilPrefixes {
		if strings.HasPrefix(trimmed, prefix) {
			return true
		}
	}
	return false
}

// LeadingInteger extracts the non-negative integer anchored at the start
// of the text, tolerating a leading run of emphasis markup. Returns false
// when no digit run starts the cleaned text or the run overflows int64.
func LeadingInteger(text string) (int64, bool) {
	cleaned := strings.TrimLeft(strings.TrimSpace(text), emphasisRunes)

	end := 0
	for end < len(cleaned) && cleaned[end] >= '0' && cleaned[end] <= '9' {
		end++
	}
	if end == 0 {
		return 0, false
	}

	n, err := strconv.ParseInt(cleaned[:end], 10, 64)
	if err != nil {
		// Digit run longer than a representable integer.
		return 0, false
	}
	return n, true
}
