// Package cli provides the contentbuild command-line interface.
package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/ns-engineering/contentbuild/internal/logger"
)

// version is set at build time with -ldflags "-X .../cli.version=...".
var version = "dev"

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "contentbuild",
	Short: "Build website data from CSV content",
	Long: `contentbuild turns the CSV files and media folders under the content
root into the JSON data files the website reads, and copies the media
they reference into the publish tree.

Fatal content errors stop the build before anything is written.
Warnings are reported but never change the exit code.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (default contentbuild.toml)")
	flags.BoolVarP(&verbose, "verbose", "v", false, "print debug output and section headers")
	flags.String("content", "", "content root directory")
	flags.String("public", "", "publish root for staged media")
	flags.String("out", "", "output directory for generated JSON")
	flags.StringSlice("domains", nil, "domains to build (projects,equipment,elibrary,team,hero)")
}

// Execute runs the root command until ctx is cancelled or the command ends.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}
