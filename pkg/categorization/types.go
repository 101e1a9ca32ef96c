// Package categorization assigns confidence-scored tags to feed articles.
//
// The engine combines several independent evidence signals: categories
// declared by the feed itself, declarative pattern rules, keyword matching
// against tag definitions, and feed-level tag hints. All signals are merged
// into one ranked, deduplicated, length-capped tag list per article.
//
// An Engine is immutable after construction and safe for concurrent use;
// the fetch pipeline shares a single instance across workers.
package categorization

// TagSource records which evidence signal produced a tag.
type TagSource int

const (
	// SourceManual marks a feed-level hint admitted with weak content support.
	SourceManual TagSource = iota
	// SourceFeed marks a category declared by the publisher in the feed entry.
	SourceFeed
	// SourceRule marks a tag produced by a declarative rule.
	SourceRule
	// SourceKeyword marks a tag produced by keyword matching against a
	// tag definition.
	SourceKeyword
)

func (s TagSource) String() string {
	switch s {
	case SourceManual:
		return "manual"
	case SourceFeed:
		return "feed"
	case SourceRule:
		return "rule"
	case SourceKeyword:
		return "keyword"
	default:
		return "unknown"
	}
}

// Tag is a classification label with a confidence in [0,1] and provenance.
// Names are always lower-cased and alias-normalized.
type Tag struct {
	Name       string
	Confidence float64
	Source     TagSource
}

// ItemContext is a read-only view over one article's fields for the
// duration of a single classification call. Empty strings stand in for
// absent optional fields.
type ItemContext struct {
	Title         string
	Description   string
	Link          string
	Author        string
	FeedSlug      string
	FeedTags      []string
	RSSCategories []string
}

// TagDefinition declares a keyword-driven tag candidate.
type TagDefinition struct {
	Name        string   `koanf:"name" toml:"name"`
	Description string   `koanf:"description" toml:"description"`
	Keywords    []string `koanf:"keywords" toml:"keywords"`
}

// TagRule is a declarative classification condition. One rule may emit a
// single tag (Tag) or several (Tags), all sharing the rule's confidence.
type TagRule struct {
	RuleType         string   `koanf:"type" toml:"type"`
	Patterns         []string `koanf:"patterns" toml:"patterns"`
	Tag              string   `koanf:"tag" toml:"tag,omitempty"`
	Tags             []string `koanf:"tags" toml:"tags,omitempty"`
	Confidence       float64  `koanf:"confidence" toml:"confidence"`
	ExcludePatterns  []string `koanf:"exclude_patterns" toml:"exclude_patterns,omitempty"`
	MinKeywordCount  int      `koanf:"min_keyword_count" toml:"min_keyword_count,omitempty"`
	RequiredKeywords []string `koanf:"required_keywords" toml:"required_keywords,omitempty"`
	ExcludeTags      []string `koanf:"exclude_tags" toml:"exclude_tags,omitempty"`
}

// TagAlias collapses tag-name variants into one canonical name.
type TagAlias struct {
	From []string `koanf:"from" toml:"from"`
	To   string   `koanf:"to" toml:"to"`
}

// Config holds the fully merged categorization configuration. The engine
// owns it for its lifetime; it is never mutated during classification.
type Config struct {
	Enabled             bool            `koanf:"enabled" toml:"enabled"`
	AutoTagNewArticles  bool            `koanf:"auto_tag_new_articles" toml:"auto_tag_new_articles"`
	MaxTagsPerItem      int             `koanf:"max_tags_per_item" toml:"max_tags_per_item"`
	ConfidenceThreshold float64         `koanf:"confidence_threshold" toml:"confidence_threshold"`
	Tags                []TagDefinition `koanf:"tags" toml:"tags,omitempty"`
	Rules               []TagRule       `koanf:"rules" toml:"rules,omitempty"`
	Aliases             []TagAlias      `koanf:"aliases" toml:"aliases,omitempty"`
}

// DefaultConfig returns the categorization defaults used when the user's
// config file has no [categorization] section.
func DefaultConfig() Config {
	return Config{
		Enabled:             true,
		AutoTagNewArticles:  true,
		MaxTagsPerItem:      5,
		ConfidenceThreshold: 0.3,
	}
}
