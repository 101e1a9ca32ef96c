package config

import (
	"os"

	gotoml "github.com/pelletier/go-toml/v2"

	"github.com/arthur-debert/spacefeeder/pkg/errors"
	"github.com/arthur-debert/spacefeeder/pkg/feeds"
)

// saveConfig is the minimal on-disk form: user overrides only, never the
// merged defaults.
type saveConfig struct {
	ParseConfig
	OutputConfig
	Categorization saveCategorization            `toml:"categorization"`
	Feeds          map[string]feeds.UserFeedInfo `toml:"feeds"`
}

// saveCategorization keeps only the enabled flag; tags, rules, and
// aliases come back from the embedded defaults on the next load.
type saveCategorization struct {
	Enabled bool `toml:"enabled"`
}

// Save writes the config back to disk in minimal form. Registry feeds are
// reduced to the fields the user actually changed.
func Save(cfg *Config, path string) error {
	sc := saveConfig{
		ParseConfig:  cfg.Parse,
		OutputConfig: cfg.Output,
		Categorization: saveCategorization{
			Enabled: cfg.Categorization.Enabled,
		},
		Feeds: extractUserFeeds(cfg.Feeds),
	}

	data, err := gotoml.Marshal(sc)
	if err != nil {
		return errors.Wrap(err, errors.ErrConfigSave, "failed to serialize config")
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.Wrapf(err, errors.ErrConfigSave, "failed to write config to %s", path)
	}
	return nil
}

// extractUserFeeds diffs each feed against the curated registry so only
// user-changed fields survive the round trip.
func extractUserFeeds(merged map[string]feeds.FeedInfo) map[string]feeds.UserFeedInfo {
	registry := DefaultFeeds()
	user := make(map[string]feeds.UserFeedInfo, len(merged))

	for slug, feed := range merged {
		registryFeed, ok := registry[slug]
		if !ok {
			user[slug] = feeds.UserFeedInfo{
				URL:         strPtr(feed.URL),
				Author:      strPtr(feed.Author),
				Description: optionalStr(feed.Description),
				Tier:        feed.Tier,
				Tags:        feed.Tags,
				AutoTag:     feed.AutoTag,
			}
			continue
		}
		user[slug] = feedOverride(feed, registryFeed)
	}

	return user
}

// feedOverride keeps only the fields that differ from the registry entry.
func feedOverride(feed, registryFeed feeds.FeedInfo) feeds.UserFeedInfo {
	override := feeds.UserFeedInfo{
		Tier:    feed.Tier,
		AutoTag: feed.AutoTag,
	}
	if feed.URL != registryFeed.URL {
		override.URL = strPtr(feed.URL)
	}
	if feed.Author != registryFeed.Author {
		override.Author = strPtr(feed.Author)
	}
	if feed.Description != registryFeed.Description {
		override.Description = strPtr(feed.Description)
	}
	if !equalStrings(feed.Tags, registryFeed.Tags) {
		override.Tags = feed.Tags
	}
	return override
}

func strPtr(s string) *string { return &s }

func optionalStr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
