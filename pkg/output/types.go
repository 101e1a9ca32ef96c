// Package output holds the JSON data model consumed by the static site
// and the writers that produce it.
package output

import (
	"time"

	"github.com/arthur-debert/spacefeeder/pkg/feeds"
)

// Item is one processed article as it appears in the generated data
// files. Description is display-ready; SafeDescription is the word-capped
// fallback.
type Item struct {
	Title           string     `json:"title"`
	ItemURL         string     `json:"item_url"`
	Description     string     `json:"description"`
	SafeDescription string     `json:"safe_description"`
	PubDate         *time.Time `json:"pub_date"`
	Tags            []string   `json:"tags,omitempty"`
}

// FeedOutput is a feed with its display items, as written to
// feedData.json.
type FeedOutput struct {
	feeds.FeedInfo
	Slug  string `json:"slug"`
	Items []Item `json:"items"`
}

// ItemOutput is a single article annotated with its feed's identity, as
// written to itemData.json and the tier files.
type ItemOutput struct {
	Item
	Slug   string     `json:"slug"`
	Author string     `json:"author"`
	Tier   feeds.Tier `json:"tier"`
}

// ItemOutputs flattens a feed's display items, stamping each with the
// feed's slug, author, and tier.
func (f *FeedOutput) ItemOutputs() []ItemOutput {
	out := make([]ItemOutput, 0, len(f.Items))
	for _, item := range f.Items {
		out = append(out, ItemOutput{
			Item:   item,
			Slug:   f.Slug,
			Author: f.Author,
			Tier:   f.Tier,
		})
	}
	return out
}
