package feeds

import (
	"sort"
	"strings"
)

// RegistryMatch is one curated feed matching a registry search.
type RegistryMatch struct {
	Slug    string
	Info    FeedInfo
	Score   int
	Matched []string
}

// SearchRegistry scores registry feeds against a query. Slug matches rank
// highest, then tags, author, and description. An optional tag narrows
// the candidates to feeds carrying that exact tag.
func SearchRegistry(registry map[string]FeedInfo, query, tag string) []RegistryMatch {
	query = strings.ToLower(query)

	var matches []RegistryMatch
	for slug, info := range registry {
		if tag != "" && !hasTag(info.Tags, tag) {
			continue
		}

		var score int
		var matched []string
		if strings.Contains(strings.ToLower(slug), query) {
			score += 10
			matched = append(matched, "name")
		}
		for _, t := range info.Tags {
			if strings.Contains(strings.ToLower(t), query) {
				score += 7
				matched = append(matched, "tags")
				break
			}
		}
		if strings.Contains(strings.ToLower(info.Author), query) {
			score += 5
			matched = append(matched, "author")
		}
		if strings.Contains(strings.ToLower(info.Description), query) {
			score += 3
			matched = append(matched, "description")
		}

		if score > 0 {
			matches = append(matches, RegistryMatch{Slug: slug, Info: info, Score: score, Matched: matched})
		}
	}

	sort.Slice(matches, func(i, j int) bool {
		if matches[i].Score != matches[j].Score {
			return matches[i].Score > matches[j].Score
		}
		return matches[i].Slug < matches[j].Slug
	})
	return matches
}

func hasTag(tags []string, tag string) bool {
	for _, t := range tags {
		if strings.EqualFold(t, tag) {
			return true
		}
	}
	return false
}
