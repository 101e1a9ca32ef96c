package output

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/spacefeeder/pkg/feeds"
)

func TestWriteJSONCreatesParentDirs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "content", "data", "feedData.json")

	require.NoError(t, WriteJSON(path, []string{"a", "b"}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var decoded []string
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, []string{"a", "b"}, decoded)
}

func TestSplitByTier(t *testing.T) {
	items := []ItemOutput{
		{Slug: "a", Tier: feeds.TierLove},
		{Slug: "b", Tier: feeds.TierNew},
		{Slug: "c", Tier: feeds.TierLike},
		{Slug: "d", Tier: feeds.TierLove},
	}

	loved, liked, newItems := SplitByTier(items)
	assert.Len(t, loved, 2)
	assert.Len(t, liked, 1)
	assert.Len(t, newItems, 1)
	assert.Equal(t, "b", newItems[0].Slug)
}

func TestSortNewestFirst(t *testing.T) {
	older := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)
	newer := time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC)

	items := []ItemOutput{
		{Slug: "undated"},
		{Slug: "older", Item: Item{PubDate: &older}},
		{Slug: "newer", Item: Item{PubDate: &newer}},
	}

	SortNewestFirst(items)
	assert.Equal(t, "newer", items[0].Slug)
	assert.Equal(t, "older", items[1].Slug)
	assert.Equal(t, "undated", items[2].Slug)
}

func TestItemOutputsStampFeedIdentity(t *testing.T) {
	feed := FeedOutput{
		FeedInfo: feeds.FeedInfo{Author: "Someone", Tier: feeds.TierLike},
		Slug:     "someblog",
		Items:    []Item{{Title: "First"}, {Title: "Second"}},
	}

	items := feed.ItemOutputs()
	require.Len(t, items, 2)
	assert.Equal(t, "someblog", items[0].Slug)
	assert.Equal(t, "Someone", items[0].Author)
	assert.Equal(t, feeds.TierLike, items[1].Tier)
}
