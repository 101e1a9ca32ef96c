package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/spacefeeder/pkg/categorization"
	"github.com/arthur-debert/spacefeeder/pkg/config"
	"github.com/arthur-debert/spacefeeder/pkg/feeds"
)

// starterFeeds seed a new config with a few registry slugs per tier.
var starterFeeds = map[string]feeds.Tier{
	"simonwillison":  feeds.TierLove,
	"danluu":         feeds.TierLike,
	"lobsters":       feeds.TierLike,
	"hackernews":     feeds.TierNew,
	"thisweekinrust": feeds.TierNew,
}

func newInitCmd() *cobra.Command {
	var (
		configPath string
		force      bool
		global     bool
		quiet      bool
	)

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create a starter configuration file",
		Long: `Create a spacefeeder.toml with sensible defaults and a handful of
curated feeds to get started. Edit the file to add, remove, or re-tier
feeds.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := configPath
			if global {
				path = filepath.Join(xdg.ConfigHome, "spacefeeder", "spacefeeder.toml")
			}

			if _, err := os.Stat(path); err == nil && !force {
				fmt.Printf("Configuration file already exists at: %s\n", path)
				fmt.Println("Use --force to overwrite or --config for a different path")
				return nil
			}

			if dir := filepath.Dir(path); dir != "." {
				if err := os.MkdirAll(dir, 0o755); err != nil {
					return err
				}
			}

			if err := config.Save(starterConfig(), path); err != nil {
				return err
			}

			if quiet {
				return nil
			}
			fmt.Printf("Configuration created at %s\n", path)
			fmt.Println("\nNext steps:")
			fmt.Println("  1. Edit the config to pick your feeds")
			fmt.Println("  2. Run 'spacefeeder fetch' to download them")
			fmt.Println("  3. Run 'spacefeeder search <query>' to search fetched articles")
			return nil
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", defaultConfigPath, "Path for the new config file")
	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite an existing config file")
	cmd.Flags().BoolVar(&global, "global", false, "Create the config under the XDG config directory")
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "Suppress output")
	return cmd
}

// starterConfig builds the initial config: defaults plus a few registry
// feeds. Save reduces the registry feeds to tier-only entries.
func starterConfig() *config.Config {
	registry := config.DefaultFeeds()
	selected := make(map[string]feeds.FeedInfo, len(starterFeeds))
	for slug, tier := range starterFeeds {
		info, ok := registry[slug]
		if !ok {
			continue
		}
		info.Tier = tier
		selected[slug] = info
	}

	return &config.Config{
		Parse: config.ParseConfig{
			MaxArticles:          5,
			MaxArticlesForSearch: 200,
			DescriptionMaxWords:  150,
		},
		Output: config.OutputConfig{
			FeedDataOutputPath: "./content/data/feedData.json",
			ItemDataOutputPath: "./content/data/itemData.json",
			BaseURL:            "http://localhost:8000/",
		},
		Categorization: categorization.DefaultConfig(),
		Feeds:          selected,
	}
}
