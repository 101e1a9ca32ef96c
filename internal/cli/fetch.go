package cli

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/spacefeeder/pkg/config"
	"github.com/arthur-debert/spacefeeder/pkg/fetch"
)

func newFetchCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "fetch",
		Short: "Fetch all configured feeds and rebuild the data files",
		Long: `Download every configured feed, tag the articles, and write the JSON
data files and search index. Feeds that fail to download are skipped
with a warning.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}

			spinner, _ := pterm.DefaultSpinner.Start(
				fmt.Sprintf("Fetching %d feeds...", len(cfg.Feeds)))

			result, err := fetch.NewPipeline(cfg).Run(cmd.Context())
			if err != nil {
				spinner.Fail("Fetch failed")
				return err
			}

			spinner.Success(
				fmt.Sprintf("Fetched %d feeds (%d articles)", result.Fetched, result.Items))
			for _, slug := range result.Failed {
				fmt.Println(warnStyle.Render("Failed to fetch: " + slug))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", defaultConfigPath, "Path to the config file")
	return cmd
}
