package categorization

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEvaluator() *ruleEvaluator {
	return &ruleEvaluator{matcher: NewMatcher(nil)}
}

func TestParseRuleKind(t *testing.T) {
	tests := []struct {
		input string
		want  RuleKind
	}{
		{"title_contains", RuleTitleContains},
		{"content_contains", RuleContentContains},
		{"url_contains", RuleURLContains},
		{"feed_slug", RuleFeedSlug},
		{"author_contains", RuleAuthorContains},
		{"author_with_content", RuleAuthorWithContent},
		{"content_analysis", RuleContentAnalysis},
		{"exclude_if", RuleExcludeIf},
		{"something_else", RuleUnknown},
		{"", RuleUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := ParseRuleKind(tt.input)
			assert.Equal(t, tt.want, got)
			if tt.want != RuleUnknown {
				assert.Equal(t, tt.input, got.String())
			}
		})
	}
}

func TestTitleRule(t *testing.T) {
	eval := newTestEvaluator()
	rule := &TagRule{
		RuleType:   "title_contains",
		Patterns:   []string{"Rust"},
		Tag:        "rust",
		Confidence: 0.9,
	}

	tags := eval.Apply(rule, &ItemContext{Title: "Introduction to Rust", FeedSlug: "blog"})
	require.Len(t, tags, 1)
	assert.Equal(t, "rust", tags[0].Name)
	assert.Equal(t, 0.9, tags[0].Confidence)
	assert.Equal(t, SourceRule, tags[0].Source)

	// Word boundary applies to title patterns too
	tags = eval.Apply(rule, &ItemContext{Title: "Trust issues in software", FeedSlug: "blog"})
	assert.Nil(t, tags)
}

func TestContentRule(t *testing.T) {
	eval := newTestEvaluator()
	rule := &TagRule{
		RuleType:   "content_contains",
		Patterns:   []string{"kubernetes"},
		Tag:        "devops",
		Confidence: 0.7,
	}

	tags := eval.Apply(rule, &ItemContext{
		Title:       "Cluster management",
		Description: "Deploying workloads on Kubernetes at scale.",
	})
	require.Len(t, tags, 1)
	assert.Equal(t, "devops", tags[0].Name)
}

func TestURLRuleUsesSubstringMatch(t *testing.T) {
	eval := newTestEvaluator()
	rule := &TagRule{
		RuleType:   "url_contains",
		Patterns:   []string{"youtube.com"},
		Tag:        "video",
		Confidence: 0.95,
	}

	tags := eval.Apply(rule, &ItemContext{Title: "A talk", Link: "https://www.youtube.com/watch?v=abc"})
	require.Len(t, tags, 1)
	assert.Equal(t, "video", tags[0].Name)

	assert.Nil(t, eval.Apply(rule, &ItemContext{Title: "A talk"}))
}

func TestFeedSlugRuleExactMatch(t *testing.T) {
	eval := newTestEvaluator()
	rule := &TagRule{
		RuleType:   "feed_slug",
		Patterns:   []string{"hackernews"},
		Tag:        "news",
		Confidence: 0.6,
	}

	require.Len(t, eval.Apply(rule, &ItemContext{Title: "x", FeedSlug: "hackernews"}), 1)
	assert.Nil(t, eval.Apply(rule, &ItemContext{Title: "x", FeedSlug: "hackernews2"}))
	assert.Nil(t, eval.Apply(rule, &ItemContext{Title: "x", FeedSlug: "hacker"}))
}

func TestAuthorContainsRule(t *testing.T) {
	eval := newTestEvaluator()
	rule := &TagRule{
		RuleType:   "author_contains",
		Patterns:   []string{"willison"},
		Tag:        "blogs",
		Confidence: 0.5,
	}

	require.Len(t, eval.Apply(rule, &ItemContext{Title: "x", Author: "Simon Willison"}), 1)
	assert.Nil(t, eval.Apply(rule, &ItemContext{Title: "x", Author: "Someone Else"}))
	assert.Nil(t, eval.Apply(rule, &ItemContext{Title: "x"}))
}

func TestAuthorWithContentRequiresAllKeywords(t *testing.T) {
	eval := newTestEvaluator()
	rule := &TagRule{
		RuleType:         "author_with_content",
		Patterns:         []string{"Simon Willison"},
		Tag:              "ai",
		Confidence:       0.8,
		RequiredKeywords: []string{"ai", "llm"},
	}

	// Both required keywords present
	tags := eval.Apply(rule, &ItemContext{
		Title:       "Building AI applications",
		Description: "Using LLM models",
		Author:      "Simon Willison",
	})
	require.Len(t, tags, 1)
	assert.Equal(t, 0.8, tags[0].Confidence)

	// Only one required keyword present
	assert.Nil(t, eval.Apply(rule, &ItemContext{
		Title:       "Building AI applications",
		Description: "Without the other keyword",
		Author:      "Simon Willison",
	}))

	// Author does not match
	assert.Nil(t, eval.Apply(rule, &ItemContext{
		Title:  "Building AI applications with LLM models",
		Author: "Someone Else",
	}))
}

func TestAuthorWithContentEmptyRequiredNeverFires(t *testing.T) {
	eval := newTestEvaluator()
	rule := &TagRule{
		RuleType:   "author_with_content",
		Patterns:   []string{"Simon Willison"},
		Tag:        "ai",
		Confidence: 0.8,
	}

	// Author-only matching is author_contains' job
	assert.Nil(t, eval.Apply(rule, &ItemContext{
		Title:  "Anything at all",
		Author: "Simon Willison",
	}))
}

func TestContentAnalysisMinKeywordCount(t *testing.T) {
	eval := newTestEvaluator()
	rule := &TagRule{
		RuleType:        "content_analysis",
		Patterns:        []string{"rust", "cargo", "rustc"},
		Tag:             "rust",
		Confidence:      0.8,
		MinKeywordCount: 2,
	}

	assert.Nil(t, eval.Apply(rule, &ItemContext{
		Title:       "Languages overview",
		Description: "Go, Python, and rust compared.",
	}))

	tags := eval.Apply(rule, &ItemContext{
		Title:       "Building Rust applications with Cargo",
		Description: "A guide to cargo for rust projects.",
	})
	require.Len(t, tags, 1)
}

func TestContentAnalysisDefaultsToOneKeyword(t *testing.T) {
	eval := newTestEvaluator()
	rule := &TagRule{
		RuleType:   "content_analysis",
		Patterns:   []string{"postgres", "sqlite"},
		Tag:        "database",
		Confidence: 0.7,
	}

	tags := eval.Apply(rule, &ItemContext{Title: "Tuning postgres indexes"})
	require.Len(t, tags, 1)
}

func TestExcludePatternsVetoRule(t *testing.T) {
	eval := newTestEvaluator()
	rule := &TagRule{
		RuleType:        "title_contains",
		Patterns:        []string{"rust"},
		Tag:             "rust",
		Confidence:      0.9,
		ExcludePatterns: []string{"game"},
	}

	require.Len(t, eval.Apply(rule, &ItemContext{Title: "Rust memory safety"}), 1)
	assert.Nil(t, eval.Apply(rule, &ItemContext{
		Title:       "Rust the game",
		Description: "A survival game review.",
	}))
}

func TestRuleEmitsMultipleTags(t *testing.T) {
	eval := newTestEvaluator()
	rule := &TagRule{
		RuleType:   "title_contains",
		Patterns:   []string{"llm"},
		Tag:        "ai",
		Tags:       []string{"llm", "research"},
		Confidence: 0.85,
	}

	tags := eval.Apply(rule, &ItemContext{Title: "New LLM benchmarks"})
	require.Len(t, tags, 3)
	names := []string{tags[0].Name, tags[1].Name, tags[2].Name}
	assert.Equal(t, []string{"ai", "llm", "research"}, names)
	for _, tag := range tags {
		assert.Equal(t, 0.85, tag.Confidence)
	}
}

func TestUnknownRuleNeverMatches(t *testing.T) {
	eval := newTestEvaluator()
	rule := &TagRule{
		RuleType:   "sentiment_analysis",
		Patterns:   []string{"anything"},
		Tag:        "x",
		Confidence: 1.0,
	}

	assert.Nil(t, eval.Apply(rule, &ItemContext{Title: "anything"}))
}
