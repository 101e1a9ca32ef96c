package config

import (
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/arthur-debert/spacefeeder/pkg/errors"
	"github.com/arthur-debert/spacefeeder/pkg/logging"
)

// Load reads the user's config file, layers it over the built-in
// defaults, and resolves tags, rules, aliases, and feeds.
func Load(path string) (*Config, error) {
	logger := logging.GetLogger("config")

	k := koanf.New(".")

	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to load embedded defaults")
	}

	if err := k.Load(file.Provider(path), parserFor(path)); err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigLoad, "failed to load config from %s", path)
	}

	var fc fileConfig
	if err := k.Unmarshal("", &fc); err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to parse config from %s", path)
	}

	cfg := &Config{
		Parse: ParseConfig{
			MaxArticles:          fc.MaxArticles,
			MaxArticlesForSearch: fc.MaxArticlesForSearch,
			DescriptionMaxWords:  fc.DescriptionMaxWords,
		},
		Output: OutputConfig{
			FeedDataOutputPath: fc.FeedDataOutputPath,
			ItemDataOutputPath: fc.ItemDataOutputPath,
			BaseURL:            fc.BaseURL,
		},
		Categorization: fc.Categorization,
	}

	mergeTags(&cfg.Categorization)
	mergeCategorization(&cfg.Categorization)

	merged, err := mergeFeeds(fc.Feeds)
	if err != nil {
		return nil, err
	}
	cfg.Feeds = merged

	logger.Debug().
		Str("path", path).
		Int("feeds", len(cfg.Feeds)).
		Int("tags", len(cfg.Categorization.Tags)).
		Int("rules", len(cfg.Categorization.Rules)).
		Msg("Config loaded")

	return cfg, nil
}

// parserFor picks a koanf parser from the file extension. TOML is the
// native format; YAML is accepted for convenience.
func parserFor(path string) koanf.Parser {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return yaml.Parser()
	default:
		return toml.Parser()
	}
}
