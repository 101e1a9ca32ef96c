package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/spacefeeder/pkg/config"
	"github.com/arthur-debert/spacefeeder/pkg/feeds"
	"github.com/arthur-debert/spacefeeder/pkg/opml"
)

func newImportCmd() *cobra.Command {
	var (
		configPath string
		inputPath  string
		tierArg    string
	)

	cmd := &cobra.Command{
		Use:   "import",
		Short: "Import feed subscriptions from an OPML file",
		RunE: func(cmd *cobra.Command, args []string) error {
			tier, err := feeds.ParseTier(tierArg)
			if err != nil {
				return err
			}

			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}

			imported, err := opml.Import(inputPath, tier)
			if err != nil {
				return err
			}

			for _, feed := range imported {
				cfg.Feeds[feed.Slug] = feed.Info
				fmt.Printf("Added feed: %s -> %s\n", feed.Slug, feed.Info.Author)
			}

			if err := config.Save(cfg, configPath); err != nil {
				return err
			}
			fmt.Println(successStyle.Render(fmt.Sprintf("Imported %d feeds", len(imported))))
			return nil
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", defaultConfigPath, "Path to the config file")
	cmd.Flags().StringVar(&inputPath, "input", "", "Path to the OPML file to import")
	cmd.Flags().StringVar(&tierArg, "tier", "new", "Default tier for imported feeds")
	_ = cmd.MarkFlagRequired("input")
	return cmd
}

func newExportCmd() *cobra.Command {
	var (
		configPath string
		outputPath string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export configured feeds to an OPML file",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}

			if err := opml.Export(cfg.Feeds, outputPath); err != nil {
				return err
			}
			fmt.Println(successStyle.Render(
				fmt.Sprintf("Exported %d feeds to %s", len(cfg.Feeds), outputPath)))
			return nil
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", defaultConfigPath, "Path to the config file")
	cmd.Flags().StringVar(&outputPath, "output", "./spacefeeder_export.opml", "Path for the OPML file")
	return cmd
}
