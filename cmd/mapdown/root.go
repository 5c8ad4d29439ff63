package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for mapdown.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mapdown",
		Short: "Convert website sitemaps into Markdown files or URL lists",
		Long: `mapdown reads a sitemap (XML or JSON URL list, local file or URL),
filters the URLs by substring patterns, and either writes the URL list to a
flat text/JSON file or fetches every page and saves it as Markdown.

Pages can be fetched directly (with local HTML to Markdown conversion) or
through the hosted Jina Reader and Firecrawl APIs.`,
		Version:       getVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags that apply to all commands
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")

	// Add subcommands
	cmd.AddCommand(NewFetchCmd())
	cmd.AddCommand(NewListCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command. Any error exits with status 1; per-URL
// fetch failures are not errors at this level.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
