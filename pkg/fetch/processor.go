package fetch

import (
	"time"

	"github.com/mmcdole/gofeed"

	"github.com/arthur-debert/spacefeeder/pkg/categorization"
	"github.com/arthur-debert/spacefeeder/pkg/config"
	"github.com/arthur-debert/spacefeeder/pkg/feeds"
	"github.com/arthur-debert/spacefeeder/pkg/output"
)

// ProcessedFeed is one fetched feed after item processing: the display
// subset for feedData.json plus the full item list for search.
type ProcessedFeed struct {
	Display  output.FeedOutput
	AllItems []output.Item
	Meta     feeds.FeedInfo
	Slug     string
}

// Processor turns parsed feeds into output items. It holds one shared
// categorization engine; both are immutable, so a single processor serves
// all pipeline workers.
type Processor struct {
	parse  config.ParseConfig
	engine *categorization.Engine
}

// NewProcessor builds a processor from the merged config.
func NewProcessor(cfg *config.Config) *Processor {
	return &Processor{
		parse:  cfg.Parse,
		engine: categorization.NewEngine(cfg.Categorization),
	}
}

// BuildFeed processes up to max_articles_for_search entries of a feed,
// keeping the first max_articles as the display subset.
func (p *Processor) BuildFeed(feed *gofeed.Feed, info feeds.FeedInfo, slug string) ProcessedFeed {
	entries := feed.Items
	if p.parse.MaxArticlesForSearch > 0 && len(entries) > p.parse.MaxArticlesForSearch {
		entries = entries[:p.parse.MaxArticlesForSearch]
	}

	items := make([]output.Item, 0, len(entries))
	for _, entry := range entries {
		items = append(items, p.buildItem(entry, info, slug))
	}

	display := items
	if p.parse.MaxArticles > 0 && len(display) > p.parse.MaxArticles {
		display = display[:p.parse.MaxArticles]
	}

	return ProcessedFeed{
		Display: output.FeedOutput{
			FeedInfo: info,
			Slug:     slug,
			Items:    display,
		},
		AllItems: items,
		Meta:     info,
		Slug:     slug,
	}
}

// buildItem cleans up one entry's text and runs categorization on it.
func (p *Processor) buildItem(entry *gofeed.Item, info feeds.FeedInfo, slug string) output.Item {
	stripped := StripHTML(descriptionFromItem(entry))
	safe := ShortDescription(stripped, p.parse.DescriptionMaxWords)
	description, ok := FirstParagraph(stripped)
	if !ok {
		description = safe
	}

	var pubDate *time.Time
	switch {
	case entry.PublishedParsed != nil:
		pubDate = entry.PublishedParsed
	case entry.UpdatedParsed != nil:
		pubDate = entry.UpdatedParsed
	}

	item := output.Item{
		Title:           entry.Title,
		ItemURL:         entry.Link,
		Description:     description,
		SafeDescription: safe,
		PubDate:         pubDate,
	}

	if p.engine.Enabled() {
		ctx := &categorization.ItemContext{
			Title:         entry.Title,
			Description:   description,
			Link:          entry.Link,
			Author:        info.Author,
			FeedSlug:      slug,
			FeedTags:      info.Tags,
			RSSCategories: entry.Categories,
		}
		for _, tag := range p.engine.GenerateTags(ctx) {
			item.Tags = append(item.Tags, tag.Name)
		}
	}

	return item
}
