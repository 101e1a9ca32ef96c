package output

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sort"

	"github.com/arthur-debert/spacefeeder/pkg/errors"
	"github.com/arthur-debert/spacefeeder/pkg/feeds"
)

// WriteJSON pretty-prints data to path, creating parent directories as
// needed.
func WriteJSON(path string, data interface{}) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return errors.Wrapf(err, errors.ErrDirCreate, "failed to create directory for %s", path)
		}
	}

	encoded, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return errors.Wrapf(err, errors.ErrOutputWrite, "failed to encode %s", path)
	}
	if err := os.WriteFile(path, encoded, 0o644); err != nil {
		return errors.Wrapf(err, errors.ErrOutputWrite, "failed to write %s", path)
	}
	return nil
}

// SplitByTier buckets items into loved, liked, and new.
func SplitByTier(items []ItemOutput) (loved, liked, newItems []ItemOutput) {
	for _, item := range items {
		switch item.Tier {
		case feeds.TierLove:
			loved = append(loved, item)
		case feeds.TierLike:
			liked = append(liked, item)
		default:
			newItems = append(newItems, item)
		}
	}
	return loved, liked, newItems
}

// SortNewestFirst orders items by publication date, newest first. Items
// without a date sink to the end; ties keep their existing order.
func SortNewestFirst(items []ItemOutput) {
	sort.SliceStable(items, func(i, j int) bool {
		a, b := items[i].PubDate, items[j].PubDate
		switch {
		case a == nil:
			return false
		case b == nil:
			return true
		default:
			return a.After(*b)
		}
	})
}
