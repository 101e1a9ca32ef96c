package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/spacefeeder/pkg/categorization"
	"github.com/arthur-debert/spacefeeder/pkg/config"
)

// newCategorizeCmd classifies one article from flags, for testing tag
// rules without running a full fetch.
func newCategorizeCmd() *cobra.Command {
	var (
		configPath  string
		title       string
		description string
		link        string
		author      string
		feedSlug    string
	)

	cmd := &cobra.Command{
		Use:   "categorize",
		Short: "Run the tagging rules against a single article",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}

			engine := categorization.NewEngine(cfg.Categorization)
			if !engine.Enabled() {
				fmt.Println(warnStyle.Render("Categorization is disabled in the config"))
				return nil
			}

			itemCtx := &categorization.ItemContext{
				Title:       title,
				Description: description,
				Link:        link,
				Author:      author,
				FeedSlug:    feedSlug,
			}
			if feedSlug != "" {
				if info, ok := cfg.Feeds[feedSlug]; ok {
					itemCtx.FeedTags = info.Tags
					if itemCtx.Author == "" {
						itemCtx.Author = info.Author
					}
				}
			}

			tags := engine.GenerateTags(itemCtx)
			if len(tags) == 0 {
				fmt.Println("No tags generated")
				return nil
			}

			fmt.Printf("Generated %d tag(s):\n", len(tags))
			for _, tag := range tags {
				fmt.Printf("  %s %s\n", tagStyle.Render(tag.Name),
					dimStyle.Render(fmt.Sprintf("(%.2f, %s)", tag.Confidence, tag.Source)))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", defaultConfigPath, "Path to the config file")
	cmd.Flags().StringVar(&title, "title", "", "Article title")
	cmd.Flags().StringVar(&description, "description", "", "Article description or body text")
	cmd.Flags().StringVar(&link, "link", "", "Article URL")
	cmd.Flags().StringVar(&author, "author", "", "Article author")
	cmd.Flags().StringVar(&feedSlug, "feed-slug", "", "Slug of the feed the article came from")
	_ = cmd.MarkFlagRequired("title")
	return cmd
}
