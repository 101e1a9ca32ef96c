package categorization

import (
	"sort"
	"strings"
)

// Engine orchestrates the full tagging pipeline for one article. It owns
// the immutable merged configuration and the precomputed alias table, and
// exposes one entry point per article.
type Engine struct {
	config  Config
	matcher *Matcher
	eval    ruleEvaluator
}

// NewEngine builds an engine from a fully merged configuration. The engine
// never mutates the config after construction and may be shared across
// goroutines.
func NewEngine(config Config) *Engine {
	matcher := NewMatcher(config.Aliases)
	return &Engine{
		config:  config,
		matcher: matcher,
		eval:    ruleEvaluator{matcher: matcher},
	}
}

// Enabled reports whether categorization is turned on.
func (e *Engine) Enabled() bool {
	return e.config.Enabled
}

// NormalizeTag lower-cases and alias-normalizes a tag name.
func (e *Engine) NormalizeTag(tag string) string {
	return e.matcher.NormalizeTag(tag)
}

// GenerateTags runs the full pipeline for one article and returns the
// ordered tag list: sorted by confidence descending (insertion order on
// ties) and capped at max_tags_per_item. It never returns an error; a
// disabled engine returns an empty list.
func (e *Engine) GenerateTags(ctx *ItemContext) []Tag {
	if !e.config.Enabled {
		return nil
	}

	var tags []Tag
	seen := make(map[string]bool)
	content := lowerContent(ctx)

	// Feed tags are hints that corroborate content-derived signal, not
	// automatic assignments.
	// hintOrder preserves first-seen order so the weak-admission step below
	// is deterministic.
	feedTagHints := make(map[string]bool)
	var hintOrder []string
	for _, t := range ctx.FeedTags {
		normalized := e.matcher.NormalizeTag(t)
		if !feedTagHints[normalized] {
			feedTagHints[normalized] = true
			hintOrder = append(hintOrder, normalized)
		}
	}

	// RSS/Atom categories come from the publisher's own taxonomy, so they
	// keep high confidence.
	for _, category := range ctx.RSSCategories {
		normalized := e.matcher.NormalizeTag(category)
		if !seen[normalized] {
			seen[normalized] = true
			tags = append(tags, Tag{Name: normalized, Confidence: 0.9, Source: SourceFeed})
		}
	}

	// Exclusion scan: any matching exclude_if rule vetoes its exclude_tags
	// for this article.
	excluded := make(map[string]bool)
	for i := range e.config.Rules {
		rule := &e.config.Rules[i]
		if ParseRuleKind(rule.RuleType) != RuleExcludeIf {
			continue
		}
		for _, pattern := range rule.Patterns {
			if e.matcher.MatchesKeyword(content, strings.ToLower(pattern)) {
				for _, tag := range rule.ExcludeTags {
					excluded[e.matcher.NormalizeTag(tag)] = true
				}
				break
			}
		}
	}

	// Rule-based tagging, in declaration order.
	for i := range e.config.Rules {
		rule := &e.config.Rules[i]
		for _, tag := range e.eval.Apply(rule, ctx) {
			normalized := e.matcher.NormalizeTag(tag.Name)
			if excluded[normalized] || seen[normalized] {
				continue
			}
			seen[normalized] = true
			tags = append(tags, Tag{Name: normalized, Confidence: tag.Confidence, Source: tag.Source})
		}
	}

	// Keyword-based tagging against tag definitions.
	if e.config.AutoTagNewArticles {
		rawContent := ctx.Title + " " + ctx.Description
		for i := range e.config.Tags {
			tagDef := &e.config.Tags[i]
			confidence, ok := e.matcher.CheckKeywords(rawContent, tagDef.Keywords)
			if !ok || confidence < e.config.ConfidenceThreshold {
				continue
			}
			normalized := e.matcher.NormalizeTag(tagDef.Name)
			if excluded[normalized] || seen[normalized] {
				continue
			}
			seen[normalized] = true
			tags = append(tags, Tag{Name: normalized, Confidence: confidence, Source: SourceKeyword})
		}
	}

	// Feed hints boost confidence for tags the content already supports,
	// capped below certainty because they are secondary evidence.
	for i := range tags {
		if feedTagHints[tags[i].Name] {
			boosted := tags[i].Confidence * 1.2
			if boosted > 0.95 {
				boosted = 0.95
			}
			tags[i].Confidence = boosted
		}
	}

	// Feed hints with no tag yet are admitted only when at least one of
	// their keywords shows up in the content, and then with very low
	// confidence. Unrelated feed-level tags never bleed into articles.
	for _, hint := range hintOrder {
		if seen[hint] || excluded[hint] {
			continue
		}
		tagDef := e.findTagDefinition(hint)
		if tagDef == nil || len(tagDef.Keywords) == 0 {
			continue
		}
		for _, keyword := range tagDef.Keywords {
			if e.matcher.MatchesKeyword(content, strings.ToLower(keyword)) {
				seen[hint] = true
				tags = append(tags, Tag{Name: hint, Confidence: 0.25, Source: SourceManual})
				break
			}
		}
	}

	// Stable sort keeps insertion order on equal confidences, which makes
	// the output deterministic for a given input.
	sort.SliceStable(tags, func(i, j int) bool {
		return tags[i].Confidence > tags[j].Confidence
	})
	if e.config.MaxTagsPerItem > 0 && len(tags) > e.config.MaxTagsPerItem {
		tags = tags[:e.config.MaxTagsPerItem]
	}

	return tags
}

// findTagDefinition looks up a tag definition whose normalized name equals
// the given normalized tag.
func (e *Engine) findTagDefinition(normalized string) *TagDefinition {
	for i := range e.config.Tags {
		if e.matcher.NormalizeTag(e.config.Tags[i].Name) == normalized {
			return &e.config.Tags[i]
		}
	}
	return nil
}
