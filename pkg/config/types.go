// Package config loads, merges, and saves spacefeeder configuration.
//
// Configuration is layered: built-in defaults are loaded first, then the
// user's config file on top. Tag definitions, rules, aliases, and the
// curated feed registry merge additively instead, so user entries always
// win and defaults only fill gaps.
package config

import (
	"github.com/arthur-debert/spacefeeder/pkg/categorization"
	"github.com/arthur-debert/spacefeeder/pkg/feeds"
)

// ParseConfig controls how many articles are kept and how descriptions
// are shortened.
type ParseConfig struct {
	MaxArticles          int `koanf:"max_articles" toml:"max_articles"`
	MaxArticlesForSearch int `koanf:"max_articles_for_search" toml:"max_articles_for_search"`
	DescriptionMaxWords  int `koanf:"description_max_words" toml:"description_max_words"`
}

// OutputConfig says where the generated JSON data files go.
type OutputConfig struct {
	FeedDataOutputPath string `koanf:"feed_data_output_path" toml:"feed_data_output_path"`
	ItemDataOutputPath string `koanf:"item_data_output_path" toml:"item_data_output_path"`
	BaseURL            string `koanf:"base_url" toml:"base_url"`
}

// Config is the fully merged runtime configuration.
type Config struct {
	Parse          ParseConfig
	Output         OutputConfig
	Categorization categorization.Config
	Feeds          map[string]feeds.FeedInfo
}

// fileConfig mirrors the on-disk layout: parse and output keys sit at the
// top level, feeds are in their minimal user form.
type fileConfig struct {
	MaxArticles          int `koanf:"max_articles"`
	MaxArticlesForSearch int `koanf:"max_articles_for_search"`
	DescriptionMaxWords  int `koanf:"description_max_words"`

	FeedDataOutputPath string `koanf:"feed_data_output_path"`
	ItemDataOutputPath string `koanf:"item_data_output_path"`
	BaseURL            string `koanf:"base_url"`

	Categorization categorization.Config         `koanf:"categorization"`
	Feeds          map[string]feeds.UserFeedInfo `koanf:"feeds"`
}
