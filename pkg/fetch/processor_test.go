package fetch

import (
	"testing"

	"github.com/mmcdole/gofeed"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/spacefeeder/pkg/categorization"
	"github.com/arthur-debert/spacefeeder/pkg/config"
	"github.com/arthur-debert/spacefeeder/pkg/feeds"
)

const testFeedXML = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0">
  <channel>
    <title>Test Feed</title>
    <item>
      <title>Shipping Rust crates with cargo</title>
      <link>http://example.com/rust</link>
      <description>&lt;p&gt;Using cargo workspaces for large rust projects. More detail follows here.&lt;/p&gt;</description>
      <category>programming</category>
      <pubDate>Mon, 25 Aug 2025 10:00:00 GMT</pubDate>
    </item>
    <item>
      <title>Second Item</title>
      <link>http://example.com/second</link>
      <description>A short note</description>
    </item>
    <item>
      <title>Third Item</title>
      <link>http://example.com/third</link>
      <description>Another short note</description>
    </item>
  </channel>
</rss>`

func testConfig() *config.Config {
	catCfg := categorization.DefaultConfig()
	catCfg.Tags = []categorization.TagDefinition{
		{Name: "rust", Keywords: []string{"rust", "cargo", "rustc"}},
	}
	return &config.Config{
		Parse: config.ParseConfig{
			MaxArticles:          2,
			MaxArticlesForSearch: 200,
			DescriptionMaxWords:  150,
		},
		Categorization: catCfg,
		Feeds: map[string]feeds.FeedInfo{
			"testfeed": {
				URL:    "http://example.com/feed.xml",
				Author: "Test Author",
				Tier:   feeds.TierLike,
			},
		},
	}
}

func parseTestFeed(t *testing.T) *gofeed.Feed {
	t.Helper()
	feed, err := gofeed.NewParser().ParseString(testFeedXML)
	require.NoError(t, err)
	return feed
}

func TestBuildFeedSplitsDisplayAndSearchItems(t *testing.T) {
	cfg := testConfig()
	processor := NewProcessor(cfg)

	pf := processor.BuildFeed(parseTestFeed(t), cfg.Feeds["testfeed"], "testfeed")

	assert.Len(t, pf.AllItems, 3)
	assert.Len(t, pf.Display.Items, 2)
	assert.Equal(t, "testfeed", pf.Display.Slug)
	assert.Equal(t, "Test Author", pf.Display.Author)
}

func TestBuildItemProcessesText(t *testing.T) {
	cfg := testConfig()
	processor := NewProcessor(cfg)

	pf := processor.BuildFeed(parseTestFeed(t), cfg.Feeds["testfeed"], "testfeed")
	item := pf.AllItems[0]

	assert.Equal(t, "Shipping Rust crates with cargo", item.Title)
	assert.Equal(t, "http://example.com/rust", item.ItemURL)
	// HTML is stripped and the lead sentence extracted.
	assert.NotContains(t, item.Description, "<p>")
	assert.Equal(t, "Using cargo workspaces for large rust projects.", item.Description)
	require.NotNil(t, item.PubDate)
	assert.Equal(t, 2025, item.PubDate.Year())
}

func TestBuildItemAppliesCategorization(t *testing.T) {
	cfg := testConfig()
	processor := NewProcessor(cfg)

	pf := processor.BuildFeed(parseTestFeed(t), cfg.Feeds["testfeed"], "testfeed")
	item := pf.AllItems[0]

	// The publisher's category plus the keyword-derived tag.
	assert.Contains(t, item.Tags, "programming")
	assert.Contains(t, item.Tags, "rust")
}

func TestBuildItemSkipsCategorizationWhenDisabled(t *testing.T) {
	cfg := testConfig()
	cfg.Categorization.Enabled = false
	processor := NewProcessor(cfg)

	pf := processor.BuildFeed(parseTestFeed(t), cfg.Feeds["testfeed"], "testfeed")
	assert.Empty(t, pf.AllItems[0].Tags)
}

func TestBuildItemToleratesSparseEntries(t *testing.T) {
	cfg := testConfig()
	processor := NewProcessor(cfg)

	sparse := `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0">
  <channel>
    <title>Sparse Feed</title>
    <item>
      <title>Only a title</title>
    </item>
  </channel>
</rss>`
	feed, err := gofeed.NewParser().ParseString(sparse)
	require.NoError(t, err)

	pf := processor.BuildFeed(feed, cfg.Feeds["testfeed"], "testfeed")
	require.Len(t, pf.AllItems, 1)

	item := pf.AllItems[0]
	assert.Equal(t, "Only a title", item.Title)
	assert.Empty(t, item.ItemURL)
	assert.Empty(t, item.Description)
	assert.Nil(t, item.PubDate)
}

func TestBuildFeedCapsSearchItems(t *testing.T) {
	cfg := testConfig()
	cfg.Parse.MaxArticlesForSearch = 1
	processor := NewProcessor(cfg)

	pf := processor.BuildFeed(parseTestFeed(t), cfg.Feeds["testfeed"], "testfeed")
	assert.Len(t, pf.AllItems, 1)
	assert.Len(t, pf.Display.Items, 1)
}
