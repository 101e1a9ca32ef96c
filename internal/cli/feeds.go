package cli

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/spacefeeder/pkg/config"
	"github.com/arthur-debert/spacefeeder/pkg/errors"
	"github.com/arthur-debert/spacefeeder/pkg/feeds"
)

// newFeedsCmd groups the registry and subscription management commands.
func newFeedsCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "feeds",
		Short: "Manage feed subscriptions and browse the curated registry",
	}
	cmd.PersistentFlags().StringVarP(&configPath, "config", "c", defaultConfigPath, "Path to the config file")

	cmd.AddCommand(newFeedsListCmd(&configPath))
	cmd.AddCommand(newFeedsInfoCmd())
	cmd.AddCommand(newFeedsAddCmd(&configPath))
	cmd.AddCommand(newFeedsRemoveCmd(&configPath))
	cmd.AddCommand(newFeedsConfigureCmd(&configPath))
	cmd.AddCommand(newFeedsSearchCmd())
	return cmd
}

func newFeedsListCmd(configPath *string) *cobra.Command {
	var tierFilter string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List configured feeds grouped by tier",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(*configPath)
			if err != nil {
				return err
			}

			var filter feeds.Tier
			if tierFilter != "" {
				filter, err = feeds.ParseTier(tierFilter)
				if err != nil {
					return err
				}
			}

			if len(cfg.Feeds) == 0 {
				fmt.Println("No feeds configured")
				return nil
			}

			fmt.Println("Configured feeds:")
			for _, tier := range []feeds.Tier{feeds.TierLove, feeds.TierLike, feeds.TierNew} {
				if filter != "" && tier != filter {
					continue
				}
				slugs := slugsWithTier(cfg.Feeds, tier)
				if len(slugs) == 0 {
					continue
				}
				fmt.Printf("\n%s (%d):\n", renderTier(tier), len(slugs))
				for _, slug := range slugs {
					printFeedLine(slug, cfg.Feeds[slug])
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&tierFilter, "tier", "", "Only show feeds with this tier")
	return cmd
}

func newFeedsInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info <slug>",
		Short: "Show a curated registry feed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			info, ok := config.DefaultFeeds()[args[0]]
			if !ok {
				return errors.Newf(errors.ErrFeedNotFound, "feed %q not found in registry", args[0])
			}
			printFeedLine(args[0], info)
			fmt.Printf("    %s\n", dimStyle.Render(info.URL))
			return nil
		},
	}
}

func newFeedsAddCmd(configPath *string) *cobra.Command {
	var tierArg string

	cmd := &cobra.Command{
		Use:   "add <slug>",
		Short: "Subscribe to a curated registry feed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			slug := args[0]
			registryFeed, ok := config.DefaultFeeds()[slug]
			if !ok {
				return errors.Newf(errors.ErrFeedNotFound,
					"feed %q not found in registry, try 'spacefeeder feeds search'", slug)
			}

			tier, err := feeds.ParseTier(tierArg)
			if err != nil {
				return err
			}

			cfg, err := config.Load(*configPath)
			if err != nil {
				return err
			}
			if _, exists := cfg.Feeds[slug]; exists {
				fmt.Printf("Feed %q is already configured. Use 'spacefeeder feeds configure' to modify it.\n", slug)
				return nil
			}

			registryFeed.Tier = tier
			cfg.Feeds[slug] = registryFeed
			if err := config.Save(cfg, *configPath); err != nil {
				return err
			}
			fmt.Println(successStyle.Render(fmt.Sprintf("Added feed %q with tier %s", slug, tier)))
			return nil
		},
	}

	cmd.Flags().StringVar(&tierArg, "tier", "new", "Tier for the feed (new, like, love)")
	return cmd
}

func newFeedsRemoveCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <slug>",
		Short: "Unsubscribe from a feed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(*configPath)
			if err != nil {
				return err
			}
			if _, ok := cfg.Feeds[args[0]]; !ok {
				return errors.Newf(errors.ErrFeedNotFound, "feed %q not found in configuration", args[0])
			}
			delete(cfg.Feeds, args[0])
			if err := config.Save(cfg, *configPath); err != nil {
				return err
			}
			fmt.Println(successStyle.Render(fmt.Sprintf("Removed feed %q", args[0])))
			return nil
		},
	}
}

func newFeedsConfigureCmd(configPath *string) *cobra.Command {
	var (
		tierArg string
		tagsArg string
	)

	cmd := &cobra.Command{
		Use:   "configure <slug>",
		Short: "Change a configured feed's tier or tags",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(*configPath)
			if err != nil {
				return err
			}
			feed, ok := cfg.Feeds[args[0]]
			if !ok {
				return errors.Newf(errors.ErrFeedNotFound,
					"feed %q not found in configuration, use 'spacefeeder feeds add' first", args[0])
			}

			var changes []string
			if tierArg != "" {
				tier, err := feeds.ParseTier(tierArg)
				if err != nil {
					return err
				}
				feed.Tier = tier
				changes = append(changes, "tier="+tier.String())
			}
			if tagsArg != "" {
				feed.Tags = mergeTags(feed.Tags, strings.Split(tagsArg, ","))
				changes = append(changes, "tags="+strings.Join(feed.Tags, ","))
			}
			if len(changes) == 0 {
				fmt.Println("Nothing to change; pass --tier or --tags")
				return nil
			}

			cfg.Feeds[args[0]] = feed
			if err := config.Save(cfg, *configPath); err != nil {
				return err
			}
			fmt.Println(successStyle.Render(
				fmt.Sprintf("Updated feed %q (%s)", args[0], strings.Join(changes, ", "))))
			return nil
		},
	}

	cmd.Flags().StringVar(&tierArg, "tier", "", "Set tier (new, like, love)")
	cmd.Flags().StringVar(&tagsArg, "tags", "", "Add tags (comma-separated)")
	return cmd
}

func newFeedsSearchCmd() *cobra.Command {
	var tagFilter string

	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Search the curated feed registry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			matches := feeds.SearchRegistry(config.DefaultFeeds(), args[0], tagFilter)
			if len(matches) == 0 {
				fmt.Printf("No feeds found matching %q\n", args[0])
				return nil
			}

			fmt.Printf("Found %d feed(s) matching %q:\n\n", len(matches), args[0])
			for _, match := range matches {
				printFeedLine(match.Slug, match.Info)
				fmt.Printf("    %s\n", dimStyle.Render("matched: "+strings.Join(match.Matched, ", ")))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&tagFilter, "tag", "", "Only match feeds carrying this tag")
	return cmd
}

func slugsWithTier(feedMap map[string]feeds.FeedInfo, tier feeds.Tier) []string {
	var slugs []string
	for slug, info := range feedMap {
		if info.Tier == tier {
			slugs = append(slugs, slug)
		}
	}
	sort.Strings(slugs)
	return slugs
}

func mergeTags(existing, added []string) []string {
	seen := make(map[string]bool, len(existing))
	merged := append([]string{}, existing...)
	for _, tag := range existing {
		seen[strings.ToLower(tag)] = true
	}
	for _, tag := range added {
		tag = strings.TrimSpace(tag)
		if tag == "" || seen[strings.ToLower(tag)] {
			continue
		}
		seen[strings.ToLower(tag)] = true
		merged = append(merged, tag)
	}
	sort.Strings(merged)
	return merged
}
