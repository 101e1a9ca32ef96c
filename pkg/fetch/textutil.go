package fetch

import (
	"regexp"
	"strings"

	"github.com/mmcdole/gofeed"
)

var htmlTagPattern = regexp.MustCompile(`<[^>]*>`)

// StripHTML removes markup tags, leaving the text content.
func StripHTML(s string) string {
	return htmlTagPattern.ReplaceAllString(s, "")
}

// ShortDescription caps a description at maxWords words, appending an
// ellipsis when it was cut.
func ShortDescription(s string, maxWords int) string {
	words := strings.Fields(s)
	if len(words) <= maxWords {
		return s
	}
	return strings.Join(words[:maxWords], " ") + "..."
}

// FirstParagraph extracts a display-sized lead from text: the first
// sentence if it is long enough to stand alone, otherwise the first
// paragraph, otherwise the first thirty words.
func FirstParagraph(text string) (string, bool) {
	if pos := strings.Index(text, ". "); pos >= 0 {
		sentence := strings.TrimSpace(text[:pos+1])
		if len(sentence) > 20 {
			return sentence, true
		}
	}

	if first, _, found := strings.Cut(text, "\n\n"); found {
		trimmed := strings.TrimSpace(first)
		if trimmed != "" {
			return trimmed, true
		}
	}

	words := strings.Fields(text)
	if len(words) == 0 {
		return "", false
	}
	if len(words) > 30 {
		words = words[:30]
	}
	return strings.Join(words, " "), true
}

// descriptionFromItem prefers the full content body over the summary.
func descriptionFromItem(item *gofeed.Item) string {
	if item.Content != "" {
		return item.Content
	}
	return item.Description
}
