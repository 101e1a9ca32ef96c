package fetch

import (
	"context"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/arthur-debert/spacefeeder/pkg/config"
	"github.com/arthur-debert/spacefeeder/pkg/errors"
	"github.com/arthur-debert/spacefeeder/pkg/logging"
	"github.com/arthur-debert/spacefeeder/pkg/output"
	"github.com/arthur-debert/spacefeeder/pkg/search"
)

const defaultWorkers = 8

// RunResult summarizes one pipeline run.
type RunResult struct {
	Fetched int
	Failed  []string
	Items   int
}

// Pipeline fetches all configured feeds concurrently and writes the data
// files and search index.
type Pipeline struct {
	cfg       *config.Config
	fetcher   *Fetcher
	processor *Processor
	indexPath string
}

// NewPipeline wires a pipeline from the merged config.
func NewPipeline(cfg *config.Config) *Pipeline {
	return &Pipeline{
		cfg:       cfg,
		fetcher:   NewFetcher(),
		processor: NewProcessor(cfg),
		indexPath: search.DefaultIndexPath,
	}
}

type fetchResult struct {
	slug string
	feed ProcessedFeed
	err  error
}

// Run fetches every configured feed, processes the results, and writes
// all outputs. Individual feed failures are logged and skipped; only a
// run where no feed could be fetched fails.
func (p *Pipeline) Run(ctx context.Context) (*RunResult, error) {
	logger := logging.GetLogger("fetch")

	slugs := make([]string, 0, len(p.cfg.Feeds))
	for slug := range p.cfg.Feeds {
		slugs = append(slugs, slug)
	}
	sort.Strings(slugs)

	logger.Info().Int("feeds", len(slugs)).Msg("Fetching feeds")

	workers := defaultWorkers
	if len(slugs) < workers {
		workers = len(slugs)
	}

	jobs := make(chan string)
	results := make(chan fetchResult)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for slug := range jobs {
				info := p.cfg.Feeds[slug]
				feed, err := p.fetcher.Fetch(ctx, info.URL)
				if err != nil {
					results <- fetchResult{slug: slug, err: err}
					continue
				}
				results <- fetchResult{slug: slug, feed: p.processor.BuildFeed(feed, info, slug)}
			}
		}()
	}

	go func() {
		defer close(jobs)
		for _, slug := range slugs {
			select {
			case jobs <- slug:
			case <-ctx.Done():
				return
			}
		}
	}()

	go func() {
		wg.Wait()
		close(results)
	}()

	processed := make(map[string]ProcessedFeed, len(slugs))
	var failed []string
	for res := range results {
		if res.err != nil {
			logger.Warn().Str("feed", res.slug).Err(res.err).Msg("Failed to fetch feed")
			failed = append(failed, res.slug)
			continue
		}
		processed[res.slug] = res.feed
	}

	if len(processed) == 0 && len(slugs) > 0 {
		return nil, errors.New(errors.ErrFeedFetch, "no feeds could be fetched")
	}

	// Assemble outputs in slug order so data files are stable run to run.
	feedOutputs := make([]output.FeedOutput, 0, len(processed))
	var items []output.ItemOutput
	for _, slug := range slugs {
		pf, ok := processed[slug]
		if !ok {
			continue
		}
		feedOutputs = append(feedOutputs, pf.Display)
		for _, item := range pf.AllItems {
			items = append(items, output.ItemOutput{
				Item:   item,
				Slug:   pf.Slug,
				Author: pf.Meta.Author,
				Tier:   pf.Meta.Tier,
			})
		}
	}
	output.SortNewestFirst(items)

	if err := p.writeData(feedOutputs, items); err != nil {
		return nil, err
	}

	if err := p.buildSearchIndex(items); err != nil {
		logger.Warn().Err(err).Msg("Failed to build search index")
	} else {
		logger.Info().Int("items", len(items)).Msg("Search index updated")
	}

	return &RunResult{
		Fetched: len(processed),
		Failed:  failed,
		Items:   len(items),
	}, nil
}

func (p *Pipeline) writeData(feedOutputs []output.FeedOutput, items []output.ItemOutput) error {
	if err := output.WriteJSON(p.cfg.Output.FeedDataOutputPath, feedOutputs); err != nil {
		return err
	}
	if err := output.WriteJSON(p.cfg.Output.ItemDataOutputPath, items); err != nil {
		return err
	}

	loved, liked, newItems := output.SplitByTier(items)
	dataDir := filepath.Dir(p.cfg.Output.ItemDataOutputPath)
	tierFiles := []struct {
		name  string
		items []output.ItemOutput
	}{
		{"lovedData.json", loved},
		{"likedData.json", liked},
		{"newData.json", newItems},
	}
	for _, tf := range tierFiles {
		if err := output.WriteJSON(filepath.Join(dataDir, tf.name), tf.items); err != nil {
			return err
		}
	}
	return nil
}

// buildSearchIndex rebuilds the bleve index and exports searchData.json
// for the web interface.
func (p *Pipeline) buildSearchIndex(items []output.ItemOutput) error {
	articles := make([]search.ArticleDoc, 0, len(items))
	for _, item := range items {
		pubDate := time.Now().UTC()
		if item.PubDate != nil {
			pubDate = *item.PubDate
		}
		articles = append(articles, search.ArticleDoc{
			Title:           item.Title,
			Description:     item.Description,
			SafeDescription: item.SafeDescription,
			Author:          item.Author,
			Tier:            item.Tier.String(),
			Slug:            item.Slug,
			ItemURL:         item.ItemURL,
			PubDate:         pubDate,
			Tags:            item.Tags,
		})
	}

	index, err := search.Rebuild(p.indexPath, articles)
	if err != nil {
		return err
	}
	defer index.Close()

	dataDir := filepath.Dir(p.cfg.Output.ItemDataOutputPath)
	return output.WriteJSON(filepath.Join(dataDir, "searchData.json"), articles)
}
