// Package mention finds @username references in comment text.
package mention

import (
	"regexp"
	"unicode/utf8"
)

// A handle is one or more word runs joined by single dots: @jane, @first.last.
var pattern = regexp.MustCompile(`@(\w+(?:\.\w+)*)`)

type Occurrence struct {
	Username string `json:"username"`
	// Offset is the rune index of the '@' in the scanned text.
	Offset int `json:"offset"`
}

// Extract returns every mention in text, left to right and non-overlapping.
func Extract(text string) []Occurrence {
	if text == "" {
		return nil
	}

	matches := pattern.FindAllStringSubmatchIndex(text, -1)
	if len(matches) == 0 {
		return nil
	}

	occurrences := make([]Occurrence, 0, len(matches))
	runes, last := 0, 0
	for _, m := range matches {
		runes += utf8.RuneCountInString(text[last:m[0]])
		last = m[0]
		occurrences = append(occurrences, Occurrence{
			Username: text[m[2]:m[3]],
			Offset:   runes,
		})
	}

	return occurrences
}
