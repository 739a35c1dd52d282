package model

import (
	"regexp"
	"strings"
)

var splitWordsPattern = regexp.MustCompile(`[_\-\s]+`)

// DefaultLabeler turns a field name into a label when the contract carries no
// x-heartform-label. Clinical abbreviations such as "trestbps" stay readable only
// through explicit labels, so this is a last resort.
func DefaultLabeler(name string) string {
	words := splitWordsPattern.Split(strings.TrimSpace(name), -1)
	segments := make([]string, 0, len(words))
	for _, word := range words {
		if word == "" {
			continue
		}
		lower := strings.ToLower(word)
		segments = append(segments, strings.ToUpper(lower[:1])+lower[1:])
	}
	return strings.Join(segments, " ")
}
