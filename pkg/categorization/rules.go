package categorization

import "strings"

// RuleKind is the closed set of rule types. Unknown strings in the config
// parse to RuleUnknown, which never matches, keeping old configs working
// against newer rule vocabularies.
type RuleKind int

const (
	RuleUnknown RuleKind = iota
	RuleTitleContains
	RuleContentContains
	RuleURLContains
	RuleFeedSlug
	RuleAuthorContains
	RuleAuthorWithContent
	RuleContentAnalysis
	RuleExcludeIf
)

// ParseRuleKind maps a config rule type string onto a RuleKind.
func ParseRuleKind(s string) RuleKind {
	switch s {
	case "title_contains":
		return RuleTitleContains
	case "content_contains":
		return RuleContentContains
	case "url_contains":
		return RuleURLContains
	case "feed_slug":
		return RuleFeedSlug
	case "author_contains":
		return RuleAuthorContains
	case "author_with_content":
		return RuleAuthorWithContent
	case "content_analysis":
		return RuleContentAnalysis
	case "exclude_if":
		return RuleExcludeIf
	default:
		return RuleUnknown
	}
}

func (k RuleKind) String() string {
	switch k {
	case RuleTitleContains:
		return "title_contains"
	case RuleContentContains:
		return "content_contains"
	case RuleURLContains:
		return "url_contains"
	case RuleFeedSlug:
		return "feed_slug"
	case RuleAuthorContains:
		return "author_contains"
	case RuleAuthorWithContent:
		return "author_with_content"
	case RuleContentAnalysis:
		return "content_analysis"
	case RuleExcludeIf:
		return "exclude_if"
	default:
		return "unknown"
	}
}

// ruleEvaluator applies single tagging rules to an article.
type ruleEvaluator struct {
	matcher *Matcher
}

// Apply evaluates one rule against an article and returns the candidate
// tags it produces, or nil when the rule does not fire. Exclude-if rules
// never produce tags here; the engine handles them as vetoes.
func (e *ruleEvaluator) Apply(rule *TagRule, ctx *ItemContext) []Tag {
	kind := ParseRuleKind(rule.RuleType)
	if kind == RuleExcludeIf || kind == RuleUnknown {
		return nil
	}

	content := lowerContent(ctx)

	// Per-rule local veto, independent of global exclude_if rules.
	for _, pattern := range rule.ExcludePatterns {
		if e.matcher.MatchesKeyword(content, strings.ToLower(pattern)) {
			return nil
		}
	}

	if !e.matches(kind, rule, ctx, content) {
		return nil
	}

	var tags []Tag
	if rule.Tag != "" {
		tags = append(tags, Tag{Name: rule.Tag, Confidence: clamp(rule.Confidence), Source: SourceRule})
	}
	for _, name := range rule.Tags {
		tags = append(tags, Tag{Name: name, Confidence: clamp(rule.Confidence), Source: SourceRule})
	}
	return tags
}

func (e *ruleEvaluator) matches(kind RuleKind, rule *TagRule, ctx *ItemContext, content string) bool {
	switch kind {
	case RuleTitleContains:
		return e.anyPatternMatches(rule.Patterns, strings.ToLower(ctx.Title))

	case RuleContentContains:
		return e.anyPatternMatches(rule.Patterns, content)

	case RuleURLContains:
		// URLs are not natural language, so plain substring containment.
		if ctx.Link == "" {
			return false
		}
		linkLower := strings.ToLower(ctx.Link)
		for _, pattern := range rule.Patterns {
			if strings.Contains(linkLower, strings.ToLower(pattern)) {
				return true
			}
		}
		return false

	case RuleFeedSlug:
		for _, pattern := range rule.Patterns {
			if ctx.FeedSlug == pattern {
				return true
			}
		}
		return false

	case RuleAuthorContains:
		if ctx.Author == "" {
			return false
		}
		authorLower := strings.ToLower(ctx.Author)
		for _, pattern := range rule.Patterns {
			if strings.Contains(authorLower, strings.ToLower(pattern)) {
				return true
			}
		}
		return false

	case RuleAuthorWithContent:
		return e.matchesAuthorWithContent(rule, ctx, content)

	case RuleContentAnalysis:
		matched := 0
		for _, pattern := range rule.Patterns {
			if e.matcher.MatchesKeyword(content, strings.ToLower(pattern)) {
				matched++
			}
		}
		minRequired := rule.MinKeywordCount
		if minRequired <= 0 {
			minRequired = 1
		}
		return matched >= minRequired

	default:
		return false
	}
}

// matchesAuthorWithContent fires only when the author matches a pattern AND
// all required keywords appear in the content. Empty required_keywords
// means the rule never fires; author-only matching is author_contains' job.
func (e *ruleEvaluator) matchesAuthorWithContent(rule *TagRule, ctx *ItemContext, content string) bool {
	if ctx.Author == "" || len(rule.RequiredKeywords) == 0 {
		return false
	}

	authorLower := strings.ToLower(ctx.Author)
	authorMatched := false
	for _, pattern := range rule.Patterns {
		if strings.Contains(authorLower, strings.ToLower(pattern)) {
			authorMatched = true
			break
		}
	}
	if !authorMatched {
		return false
	}

	for _, keyword := range rule.RequiredKeywords {
		if !e.matcher.MatchesKeyword(content, strings.ToLower(keyword)) {
			return false
		}
	}
	return true
}

func (e *ruleEvaluator) anyPatternMatches(patterns []string, content string) bool {
	for _, pattern := range patterns {
		if e.matcher.MatchesKeyword(content, strings.ToLower(pattern)) {
			return true
		}
	}
	return false
}

// lowerContent is the lower-cased "title + description" view most rule
// kinds match against.
func lowerContent(ctx *ItemContext) string {
	return strings.ToLower(ctx.Title + " " + ctx.Description)
}
