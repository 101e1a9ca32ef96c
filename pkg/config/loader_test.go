package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/spacefeeder/pkg/errors"
)

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadAppliesDefaults(t *testing.T) {
	path := writeConfig(t, "spacefeeder.toml", `
[feeds.hackernews]
tier = "like"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 5, cfg.Parse.MaxArticles)
	assert.Equal(t, 200, cfg.Parse.MaxArticlesForSearch)
	assert.Equal(t, 150, cfg.Parse.DescriptionMaxWords)
	assert.Equal(t, "./content/data/feedData.json", cfg.Output.FeedDataOutputPath)
	assert.Equal(t, "./content/data/itemData.json", cfg.Output.ItemDataOutputPath)
	assert.True(t, cfg.Categorization.Enabled)
	assert.Equal(t, 5, cfg.Categorization.MaxTagsPerItem)
	assert.InDelta(t, 0.3, cfg.Categorization.ConfidenceThreshold, 1e-9)
}

func TestLoadUserOverridesWin(t *testing.T) {
	path := writeConfig(t, "spacefeeder.toml", `
max_articles = 10
base_url = "https://feeds.example.net/"

[categorization]
enabled = false

[feeds.hackernews]
tier = "love"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 10, cfg.Parse.MaxArticles)
	assert.Equal(t, "https://feeds.example.net/", cfg.Output.BaseURL)
	assert.False(t, cfg.Categorization.Enabled)
	// Untouched defaults still apply.
	assert.Equal(t, 150, cfg.Parse.DescriptionMaxWords)
}

func TestLoadResolvesRegistryFeed(t *testing.T) {
	path := writeConfig(t, "spacefeeder.toml", `
[feeds.simonwillison]
tier = "love"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	feed, ok := cfg.Feeds["simonwillison"]
	require.True(t, ok)
	assert.Equal(t, "https://simonwillison.net/atom/everything/", feed.URL)
	assert.Equal(t, "Simon Willison", feed.Author)
	assert.Equal(t, "love", feed.Tier.String())
	assert.Contains(t, feed.Tags, "ai")
}

func TestLoadIgnoresUnmentionedRegistryFeeds(t *testing.T) {
	path := writeConfig(t, "spacefeeder.toml", `
[feeds.hackernews]
tier = "new"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Len(t, cfg.Feeds, 1)
	_, ok := cfg.Feeds["simonwillison"]
	assert.False(t, ok)
}

func TestLoadCustomFeedRequiresURLAndAuthor(t *testing.T) {
	path := writeConfig(t, "spacefeeder.toml", `
[feeds.myblog]
tier = "new"
author = "Me"
`)

	_, err := Load(path)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigValid))
}

func TestLoadCustomFeed(t *testing.T) {
	path := writeConfig(t, "spacefeeder.toml", `
[feeds.myblog]
url = "https://blog.example.com/feed.xml"
author = "Me"
tier = "love"
tags = ["programming"]
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	feed := cfg.Feeds["myblog"]
	assert.Equal(t, "https://blog.example.com/feed.xml", feed.URL)
	assert.Equal(t, "Me", feed.Author)
	assert.Equal(t, []string{"programming"}, feed.Tags)
}

func TestLoadRejectsInvalidTier(t *testing.T) {
	path := writeConfig(t, "spacefeeder.toml", `
[feeds.hackernews]
tier = "favorite"
`)

	_, err := Load(path)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigValid))
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigLoad))
}

func TestLoadYAML(t *testing.T) {
	path := writeConfig(t, "spacefeeder.yaml", `
max_articles: 7
feeds:
  hackernews:
    tier: like
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 7, cfg.Parse.MaxArticles)
	assert.Equal(t, "like", cfg.Feeds["hackernews"].Tier.String())
}

func TestLoadMergesDefaultTagsAndRules(t *testing.T) {
	path := writeConfig(t, "spacefeeder.toml", `
[[categorization.tags]]
name = "ai"
description = "My own narrower AI tag"
keywords = ["llm"]

[[categorization.rules]]
type = "title_contains"
patterns = ["zig"]
tag = "zig"
confidence = 0.9

[feeds.hackernews]
tier = "new"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	// The user's ai definition replaces the curated one.
	var aiCount int
	for _, tag := range cfg.Categorization.Tags {
		if tag.Name == "ai" {
			aiCount++
			assert.Equal(t, []string{"llm"}, tag.Keywords)
		}
	}
	assert.Equal(t, 1, aiCount)

	// Curated tags the user did not override are still present.
	names := make(map[string]bool)
	for _, tag := range cfg.Categorization.Tags {
		names[tag.Name] = true
	}
	assert.True(t, names["rust"])
	assert.True(t, names["python"])

	// The user's rule comes first, curated rules follow.
	require.NotEmpty(t, cfg.Categorization.Rules)
	assert.Equal(t, "zig", cfg.Categorization.Rules[0].Tag)
	assert.Greater(t, len(cfg.Categorization.Rules), 1)
	assert.NotEmpty(t, cfg.Categorization.Aliases)
}
