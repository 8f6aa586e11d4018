package cli

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Long: `Prints the contentbuild binary version, the build version stamped into
generated data files (build.version, after config and flags), and the Go
runtime the binary was built with.`,
	Args: cobra.NoArgs,
	RunE: runVersion,
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

func runVersion(cmd *cobra.Command, _ []string) error {
	settings, err := resolveSettings(cmd)
	if err != nil {
		return fmt.Errorf("load settings: %w", err)
	}

	cmd.Printf("contentbuild version %s\n", version)
	cmd.Printf("data build version %s\n", settings.Version)
	cmd.Printf("%s %s/%s\n", runtime.Version(), runtime.GOOS, runtime.GOARCH)
	return nil
}
