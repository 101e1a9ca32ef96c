package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/spacefeeder/pkg/errors"
	"github.com/arthur-debert/spacefeeder/pkg/search"
)

func newSearchCmd() *cobra.Command {
	var (
		author string
		tier   string
		limit  int
	)

	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Search fetched articles",
		Long: `Search the full-text index built by the fetch command. Results can be
narrowed by author (substring) and tier (exact).`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := os.Stat(search.DefaultIndexPath); err != nil {
				return errors.New(errors.ErrIndexOpen,
					"search index not found, run 'spacefeeder fetch' first")
			}

			index, err := search.Open(search.DefaultIndexPath)
			if err != nil {
				return err
			}
			defer index.Close()

			results, err := index.SearchWithFilters(args[0], author, tier, limit)
			if err != nil {
				return err
			}

			if len(results) == 0 {
				fmt.Println("No articles found matching your search criteria.")
				return nil
			}
			printSearchResults(results)
			return nil
		},
	}

	cmd.Flags().StringVar(&author, "author", "", "Filter by author (partial match, case-insensitive)")
	cmd.Flags().StringVar(&tier, "tier", "", "Filter by tier (new, like, love)")
	cmd.Flags().IntVar(&limit, "limit", 10, "Maximum number of results")
	return cmd
}
