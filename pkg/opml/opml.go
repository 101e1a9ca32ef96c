// Package opml imports and exports feed subscriptions as OPML documents.
package opml

import (
	"sort"

	"github.com/beevik/etree"

	"github.com/arthur-debert/spacefeeder/pkg/errors"
	"github.com/arthur-debert/spacefeeder/pkg/feeds"
)

// ImportedFeed is one subscription found in an OPML file.
type ImportedFeed struct {
	Slug string
	Info feeds.FeedInfo
}

// Import reads an OPML file and returns the feeds it subscribes to, in
// document order. Outlines are walked recursively, so folder groupings
// flatten out. Every imported feed gets the given tier.
func Import(path string, tier feeds.Tier) ([]ImportedFeed, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromFile(path); err != nil {
		return nil, errors.Wrapf(err, errors.ErrOPMLParse, "failed to read OPML file %s", path)
	}

	root := doc.SelectElement("opml")
	if root == nil {
		return nil, errors.Newf(errors.ErrOPMLParse, "%s is not an OPML document", path)
	}
	body := root.SelectElement("body")
	if body == nil {
		return nil, errors.Newf(errors.ErrOPMLParse, "%s has no body element", path)
	}

	var imported []ImportedFeed
	for _, outline := range body.SelectElements("outline") {
		imported = collectOutlines(outline, tier, imported)
	}
	return imported, nil
}

// collectOutlines descends one outline. Outlines with an xmlUrl are feed
// subscriptions; the rest are folders holding more outlines.
func collectOutlines(el *etree.Element, tier feeds.Tier, acc []ImportedFeed) []ImportedFeed {
	xmlURL := el.SelectAttrValue("xmlUrl", el.SelectAttrValue("xmlurl", ""))
	if xmlURL != "" {
		title := el.SelectAttrValue("text", el.SelectAttrValue("title", ""))
		if title == "" {
			title = xmlURL
		}
		acc = append(acc, ImportedFeed{
			Slug: feeds.Slugify(title),
			Info: feeds.FeedInfo{
				URL:         xmlURL,
				Author:      title,
				Description: el.SelectAttrValue("description", ""),
				Tier:        tier,
			},
		})
		return acc
	}

	for _, child := range el.SelectElements("outline") {
		acc = collectOutlines(child, tier, acc)
	}
	return acc
}

// Export writes the feed map as an OPML 2.0 document, one outline per
// feed in slug order.
func Export(feedMap map[string]feeds.FeedInfo, path string) error {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	opml := doc.CreateElement("opml")
	opml.CreateAttr("version", "2.0")

	head := opml.CreateElement("head")
	head.CreateElement("title").SetText("spacefeeder subscriptions")

	body := opml.CreateElement("body")

	slugs := make([]string, 0, len(feedMap))
	for slug := range feedMap {
		slugs = append(slugs, slug)
	}
	sort.Strings(slugs)

	for _, slug := range slugs {
		info := feedMap[slug]
		outline := body.CreateElement("outline")
		outline.CreateAttr("type", "rss")
		outline.CreateAttr("text", slug)
		outline.CreateAttr("title", info.Author)
		outline.CreateAttr("xmlUrl", info.URL)
		if info.Description != "" {
			outline.CreateAttr("description", info.Description)
		}
	}

	doc.Indent(2)
	if err := doc.WriteToFile(path); err != nil {
		return errors.Wrapf(err, errors.ErrOPMLWrite, "failed to write OPML to %s", path)
	}
	return nil
}
