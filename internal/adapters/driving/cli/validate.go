package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

// errWarnings is returned by validate --strict when warnings were found.
var errWarnings = errors.New("content has warnings")

var validateStrict bool

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check content without writing anything",
	Long: `Parses and validates every enabled content domain and checks that the
media it references exists. No media is copied and no data file is
written.`,
	Args: cobra.NoArgs,
	RunE: runValidate,
}

func init() {
	validateCmd.Flags().BoolVar(&validateStrict, "strict", false, "fail when any warning is reported (also set by build.strict)")
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, _ []string) error {
	settings, err := resolveSettings(cmd)
	if err != nil {
		return fmt.Errorf("load settings: %w", err)
	}

	report, err := newBuilder(settings, nil).Validate(cmd.Context())
	if err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	printReport(cmd.OutOrStdout(), report)

	if (validateStrict || settings.Strict) && report.WarningCount() > 0 {
		return fmt.Errorf("%w: %d", errWarnings, report.WarningCount())
	}
	return nil
}
