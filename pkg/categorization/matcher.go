package categorization

import (
	"regexp"
	"strings"
)

// Matcher is the text matching primitive behind rules and keyword tagging.
// It is stateless apart from an immutable alias lookup table and safe for
// concurrent use.
type Matcher struct {
	aliases map[string]string
}

// NewMatcher builds a matcher with a case-insensitive alias lookup table.
// The table is many-to-one: every "from" variant maps to its canonical name.
func NewMatcher(aliases []TagAlias) *Matcher {
	aliasMap := make(map[string]string)
	for _, alias := range aliases {
		for _, from := range alias.From {
			aliasMap[strings.ToLower(from)] = alias.To
		}
	}
	return &Matcher{aliases: aliasMap}
}

// MatchesKeyword reports whether keyword occurs in content at word
// boundaries. A boundary is any non-word character or the start/end of the
// string, so "ai" does not match inside "said" or "wait". Multi-word
// phrases must appear as the exact word sequence with any whitespace
// between words. Both sides are expected to be lower-cased by the caller.
//
// If the boundary pattern cannot be compiled the check degrades to plain
// substring containment rather than failing the article.
func (m *Matcher) MatchesKeyword(content, keyword string) bool {
	if keyword == "" {
		return false
	}

	words := strings.Fields(keyword)
	var pattern string
	if len(words) > 1 {
		escaped := make([]string, len(words))
		for i, w := range words {
			escaped[i] = regexp.QuoteMeta(w)
		}
		pattern = `\b` + strings.Join(escaped, `\s+`) + `\b`
	} else {
		pattern = `\b` + regexp.QuoteMeta(keyword) + `\b`
	}

	re, err := regexp.Compile(pattern)
	if err != nil {
		// Fallback to simple containment
		return strings.Contains(content, keyword)
	}
	return re.MatchString(content)
}

// CheckKeywords scores a keyword set against content. It returns false when
// no keyword matches; otherwise the confidence is matched/total, clamped to
// [0,1] with a floor of 0.33 so a single hit among many keywords still
// carries meaningful signal.
func (m *Matcher) CheckKeywords(content string, keywords []string) (float64, bool) {
	if len(keywords) == 0 {
		return 0, false
	}

	contentLower := strings.ToLower(content)
	matched := 0
	for _, keyword := range keywords {
		if m.MatchesKeyword(contentLower, strings.ToLower(keyword)) {
			matched++
		}
	}

	if matched == 0 {
		return 0, false
	}

	confidence := clamp(float64(matched) / float64(len(keywords)))
	if confidence < 0.33 {
		confidence = 0.33
	}
	return confidence, true
}

// NormalizeTag lower-cases a tag name and resolves it through the alias
// table. Unknown names pass through lower-cased.
func (m *Matcher) NormalizeTag(tag string) string {
	tagLower := strings.ToLower(tag)
	if canonical, ok := m.aliases[tagLower]; ok {
		return canonical
	}
	return tagLower
}

func clamp(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
