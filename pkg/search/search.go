// Package search wraps a bleve index over processed articles.
//
// The index is rebuilt from scratch on every fetch; search commands open
// it read-only. Author and tier filtering happens in memory after the
// full-text query.
package search

import (
	"os"
	"strings"
	"time"

	"github.com/blevesearch/bleve/v2"

	"github.com/arthur-debert/spacefeeder/pkg/errors"
)

// DefaultIndexPath is where the fetch pipeline keeps the index.
const DefaultIndexPath = "./search_index"

// ArticleDoc is the indexed form of one article. The same structure is
// exported as searchData.json for the web interface.
type ArticleDoc struct {
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	SafeDescription string    `json:"safe_description"`
	Author          string    `json:"author"`
	Tier            string    `json:"tier"`
	Slug            string    `json:"slug"`
	ItemURL         string    `json:"item_url"`
	PubDate         time.Time `json:"pub_date"`
	Tags            []string  `json:"tags,omitempty"`
}

// Result is a search hit with its relevance score.
type Result struct {
	ArticleDoc
	Score float64
}

// Index is a handle on the on-disk bleve index.
type Index struct {
	idx bleve.Index
}

// Create builds a fresh index at path, replacing nothing.
func Create(path string) (*Index, error) {
	idx, err := bleve.New(path, bleve.NewIndexMapping())
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrIndexOpen, "failed to create search index at %s", path)
	}
	return &Index{idx: idx}, nil
}

// Open opens an existing index at path.
func Open(path string) (*Index, error) {
	idx, err := bleve.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrIndexOpen, "failed to open search index at %s", path)
	}
	return &Index{idx: idx}, nil
}

// Rebuild wipes any index at path and indexes the given articles.
func Rebuild(path string, articles []ArticleDoc) (*Index, error) {
	if err := os.RemoveAll(path); err != nil {
		return nil, errors.Wrapf(err, errors.ErrIndexWrite, "failed to clear search index at %s", path)
	}
	index, err := Create(path)
	if err != nil {
		return nil, err
	}
	if err := index.Add(articles); err != nil {
		index.Close()
		return nil, err
	}
	return index, nil
}

// Close releases the index.
func (i *Index) Close() error {
	return i.idx.Close()
}

// Add indexes articles in one batch, keyed by item URL.
func (i *Index) Add(articles []ArticleDoc) error {
	batch := i.idx.NewBatch()
	for _, article := range articles {
		id := article.ItemURL
		if id == "" {
			id = article.Slug + "/" + article.Title
		}
		if err := batch.Index(id, article); err != nil {
			return errors.Wrap(err, errors.ErrIndexWrite, "failed to index article")
		}
	}
	if err := i.idx.Batch(batch); err != nil {
		return errors.Wrap(err, errors.ErrIndexWrite, "failed to commit index batch")
	}
	return nil
}

// Count returns the number of indexed articles.
func (i *Index) Count() (uint64, error) {
	count, err := i.idx.DocCount()
	if err != nil {
		return 0, errors.Wrap(err, errors.ErrIndexSearch, "failed to count indexed articles")
	}
	return count, nil
}

// Search runs a query-string query and returns up to limit results.
func (i *Index) Search(query string, limit int) ([]Result, error) {
	req := bleve.NewSearchRequestOptions(bleve.NewQueryStringQuery(query), limit, 0, false)
	req.Fields = []string{"*"}

	res, err := i.idx.Search(req)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrIndexSearch, "search failed for query %q", query)
	}

	results := make([]Result, 0, len(res.Hits))
	for _, hit := range res.Hits {
		results = append(results, Result{
			ArticleDoc: docFromFields(hit.Fields),
			Score:      hit.Score,
		})
	}
	return results, nil
}

// SearchWithFilters narrows search results by author substring and exact
// tier. Filtering is post-hoc, so the underlying query is widened to
// compensate.
func (i *Index) SearchWithFilters(query, author, tier string, limit int) ([]Result, error) {
	results, err := i.Search(query, limit*2)
	if err != nil {
		return nil, err
	}

	filtered := results[:0]
	for _, result := range results {
		if author != "" && !strings.Contains(strings.ToLower(result.Author), strings.ToLower(author)) {
			continue
		}
		if tier != "" && result.Tier != tier {
			continue
		}
		filtered = append(filtered, result)
		if len(filtered) == limit {
			break
		}
	}
	return filtered, nil
}

func docFromFields(fields map[string]interface{}) ArticleDoc {
	doc := ArticleDoc{
		Title:           str(fields["title"]),
		Description:     str(fields["description"]),
		SafeDescription: str(fields["safe_description"]),
		Author:          str(fields["author"]),
		Tier:            str(fields["tier"]),
		Slug:            str(fields["slug"]),
		ItemURL:         str(fields["item_url"]),
		Tags:            strSlice(fields["tags"]),
	}
	if raw := str(fields["pub_date"]); raw != "" {
		if ts, err := time.Parse(time.RFC3339, raw); err == nil {
			doc.PubDate = ts
		}
	}
	return doc
}

func str(v interface{}) string {
	s, _ := v.(string)
	return s
}

// strSlice handles bleve returning a single stored value as a bare string
// and multiple values as a slice.
func strSlice(v interface{}) []string {
	switch t := v.(type) {
	case string:
		return []string{t}
	case []interface{}:
		out := make([]string, 0, len(t))
		for _, item := range t {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	}
	return nil
}
