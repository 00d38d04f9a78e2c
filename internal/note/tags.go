package note

import "strings"

const maxTags = 5

const trailingPunct = ".,!?:;"

// ExtractTags pulls #hashtags out of free text: whitespace-split tokens
// starting with '#' and longer than one character, trailing punctuation
// stripped, lowercased, deduplicated in first-occurrence order, capped at
// five.
func ExtractTags(text string) []string {
	var out []string

	for _, word := range strings.Fields(text) {
		if !strings.HasPrefix(word, "#") || len(word) < 2 {
			continue
		}
		tag := strings.ToLower(strings.TrimRight(word[1:], trailingPunct))
		if tag == "" || contains(out, tag) {
			continue
		}
		out = append(out, tag)
		if len(out) == maxTags {
			break
		}
	}

	return out
}

func contains(tags []string, tag string) bool {
	for _, t := range tags {
		if t == tag {
			return true
		}
	}
	return false
}
