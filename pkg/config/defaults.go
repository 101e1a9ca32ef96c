package config

import (
	gotoml "github.com/pelletier/go-toml/v2"

	"github.com/arthur-debert/spacefeeder/pkg/categorization"
	"github.com/arthur-debert/spacefeeder/pkg/feeds"
)

type tagFile struct {
	Tags []categorization.TagDefinition `toml:"tags"`
}

type ruleFile struct {
	Rules   []categorization.TagRule  `toml:"rules"`
	Aliases []categorization.TagAlias `toml:"aliases"`
}

type feedFile struct {
	Feeds map[string]feeds.FeedInfo `toml:"feeds"`
}

// DefaultTags returns the curated tag definitions shipped with the binary.
func DefaultTags() []categorization.TagDefinition {
	var parsed tagFile
	if err := gotoml.Unmarshal(defaultTagData, &parsed); err != nil {
		panic("embedded tags.toml is invalid: " + err.Error())
	}
	return parsed.Tags
}

// DefaultRules returns the curated categorization rules and aliases.
func DefaultRules() ([]categorization.TagRule, []categorization.TagAlias) {
	var parsed ruleFile
	if err := gotoml.Unmarshal(defaultRuleData, &parsed); err != nil {
		panic("embedded rules.toml is invalid: " + err.Error())
	}
	return parsed.Rules, parsed.Aliases
}

// DefaultFeeds returns the curated feed registry keyed by slug.
func DefaultFeeds() map[string]feeds.FeedInfo {
	var parsed feedFile
	if err := gotoml.Unmarshal(defaultFeedData, &parsed); err != nil {
		panic("embedded feeds.toml is invalid: " + err.Error())
	}
	return parsed.Feeds
}
