package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/arthur-debert/spacefeeder/pkg/feeds"
	"github.com/arthur-debert/spacefeeder/pkg/search"
)

func init() {
	// Honor NO_COLOR and dumb terminals; lipgloss checks the output
	// profile but not the env overrides pterm respects.
	if termenv.EnvNoColor() {
		lipgloss.SetColorProfile(termenv.Ascii)
	}
}

var (
	titleStyle   = lipgloss.NewStyle().Bold(true)
	dimStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	tagStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))

	tierStyles = map[feeds.Tier]lipgloss.Style{
		feeds.TierLove: lipgloss.NewStyle().Foreground(lipgloss.Color("5")).Bold(true),
		feeds.TierLike: lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
		feeds.TierNew:  lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	}
)

func renderTier(t feeds.Tier) string {
	if style, ok := tierStyles[t]; ok {
		return style.Render(t.String())
	}
	return t.String()
}

// printSearchResults renders search hits the way the original web view
// lists them: title, provenance line, url, and a short preview.
func printSearchResults(results []search.Result) {
	plural := "s"
	if len(results) == 1 {
		plural = ""
	}
	fmt.Printf("Found %d result%s:\n\n", len(results), plural)

	for i, result := range results {
		fmt.Printf("%d. %s %s\n", i+1, titleStyle.Render(result.Title),
			dimStyle.Render(fmt.Sprintf("(score: %.2f)", result.Score)))
		fmt.Printf("   Author: %s | Tier: %s | Date: %s\n",
			result.Author, renderTier(feeds.Tier(result.Tier)), result.PubDate.Format("2006-01-02"))
		fmt.Printf("   %s\n", dimStyle.Render(result.ItemURL))

		preview := result.Description
		if len(preview) > 100 {
			preview = preview[:100] + "..."
		}
		fmt.Printf("   %s\n\n", preview)
	}
}

// printFeedLine renders one feed entry for list and info output.
func printFeedLine(slug string, info feeds.FeedInfo) {
	fmt.Printf("  %s - %s\n", titleStyle.Render(slug), info.Author)
	if info.Description != "" {
		fmt.Printf("    %s\n", dimStyle.Render(info.Description))
	}
	if len(info.Tags) > 0 {
		fmt.Printf("    %s\n", tagStyle.Render(strings.Join(info.Tags, ", ")))
	}
}
