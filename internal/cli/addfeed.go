package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/spacefeeder/pkg/config"
	"github.com/arthur-debert/spacefeeder/pkg/feeds"
	"github.com/arthur-debert/spacefeeder/pkg/fetch"
)

func newAddFeedCmd() *cobra.Command {
	var (
		configPath string
		tierArg    string
	)

	cmd := &cobra.Command{
		Use:   "add-feed <slug> <url> <author>",
		Short: "Add a custom feed to the configuration",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			slug, url, author := args[0], args[1], args[2]

			tier, err := feeds.ParseTier(tierArg)
			if err != nil {
				return err
			}

			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}

			cfg.Feeds[slug] = feeds.FeedInfo{
				URL:    url,
				Author: author,
				Tier:   tier,
			}

			if err := config.Save(cfg, configPath); err != nil {
				return err
			}

			fmt.Println(successStyle.Render(
				fmt.Sprintf("Added feed %q (%s, tier %s)", slug, url, tier)))
			return nil
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", defaultConfigPath, "Path to the config file")
	cmd.Flags().StringVar(&tierArg, "tier", "new", "Tier for the feed (new, like, love)")
	return cmd
}

func newFindFeedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "find-feed <base-url>",
		Short: "Probe a website for its feed URL",
		Long: `Try well-known feed locations under a site's base URL and print the
first one that responds with a feed content type.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			found, err := fetch.DiscoverFeedURL(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Println(found)
			return nil
		},
	}
}
