// Package feeds holds the feed metadata types shared by the config,
// fetch, and opml packages.
package feeds

import (
	"fmt"
	"strings"
)

// Tier classifies how much the user cares about a feed. It controls where
// a feed's items are surfaced in the generated data files.
type Tier string

const (
	TierNew  Tier = "new"
	TierLike Tier = "like"
	TierLove Tier = "love"
)

// ParseTier converts a user-supplied string into a Tier.
// Accepts lowercase and capitalized forms ("new", "New").
func ParseTier(s string) (Tier, error) {
	switch strings.ToLower(s) {
	case "new":
		return TierNew, nil
	case "like":
		return TierLike, nil
	case "love":
		return TierLove, nil
	default:
		return "", fmt.Errorf("not a valid tier: %s", s)
	}
}

func (t Tier) String() string {
	return string(t)
}

// Valid reports whether the tier is one of the known values.
func (t Tier) Valid() bool {
	switch t {
	case TierNew, TierLike, TierLove:
		return true
	}
	return false
}

// FeedInfo is a fully resolved feed entry: defaults and user overrides
// already merged.
type FeedInfo struct {
	URL         string   `koanf:"url" toml:"url" json:"url"`
	Author      string   `koanf:"author" toml:"author" json:"author"`
	Description string   `koanf:"description" toml:"description,omitempty" json:"description,omitempty"`
	Tier        Tier     `koanf:"tier" toml:"tier" json:"tier"`
	Tags        []string `koanf:"tags" toml:"tags,omitempty" json:"tags,omitempty"`
	AutoTag     *bool    `koanf:"auto_tag" toml:"auto_tag,omitempty" json:"auto_tag,omitempty"`
}

// UserFeedInfo is the minimal form a feed takes in the user's config file.
// Only the tier is required; everything else is filled from the curated
// registry when the slug is known there.
type UserFeedInfo struct {
	URL         *string  `koanf:"url" toml:"url,omitempty"`
	Author      *string  `koanf:"author" toml:"author,omitempty"`
	Description *string  `koanf:"description" toml:"description,omitempty"`
	Tier        Tier     `koanf:"tier" toml:"tier"`
	Tags        []string `koanf:"tags" toml:"tags,omitempty"`
	AutoTag     *bool    `koanf:"auto_tag" toml:"auto_tag,omitempty"`
}

// Slugify derives a config slug from a feed title, the way OPML import
// names feeds: lowercased, spaces and hyphens become underscores.
func Slugify(title string) string {
	slug := strings.ToLower(title)
	slug = strings.ReplaceAll(slug, " ", "_")
	slug = strings.ReplaceAll(slug, "-", "_")
	return slug
}
