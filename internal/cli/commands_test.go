package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/spacefeeder/pkg/feeds"
)

func TestNewRootCmdRegistersCommands(t *testing.T) {
	root := NewRootCmd()

	want := []string{
		"version", "init", "fetch", "search", "add-feed", "find-feed",
		"import", "export", "feeds", "categorize",
	}
	registered := make(map[string]bool)
	for _, cmd := range root.Commands() {
		registered[cmd.Name()] = true
	}
	for _, name := range want {
		assert.True(t, registered[name], "missing command %q", name)
	}
}

func TestStarterConfigUsesRegistryFeeds(t *testing.T) {
	cfg := starterConfig()

	require.NotEmpty(t, cfg.Feeds)
	for slug, info := range cfg.Feeds {
		wantTier, ok := starterFeeds[slug]
		require.True(t, ok, "unexpected feed %q", slug)
		assert.Equal(t, wantTier, info.Tier)
		assert.NotEmpty(t, info.URL)
		assert.NotEmpty(t, info.Author)
	}
	assert.Positive(t, cfg.Parse.MaxArticles)
	assert.True(t, cfg.Categorization.Enabled)
}

func TestMergeTagsDeduplicates(t *testing.T) {
	merged := mergeTags([]string{"rust", "programming"}, []string{"Rust", " ai ", ""})
	assert.Equal(t, []string{"ai", "programming", "rust"}, merged)
}

func TestSlugsWithTier(t *testing.T) {
	feedMap := map[string]feeds.FeedInfo{
		"b": {Tier: feeds.TierLove},
		"a": {Tier: feeds.TierLove},
		"c": {Tier: feeds.TierNew},
	}
	assert.Equal(t, []string{"a", "b"}, slugsWithTier(feedMap, feeds.TierLove))
	assert.Empty(t, slugsWithTier(feedMap, feeds.TierLike))
}
