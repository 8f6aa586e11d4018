package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ns-engineering/contentbuild/internal/adapters/driven/metrics/prometheus"
	"github.com/ns-engineering/contentbuild/internal/core/ports/driven"
	"github.com/ns-engineering/contentbuild/internal/logger"
)

var (
	buildMetricsFile string
	buildReportFile  string
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Generate site data and stage media",
	Long: `Reads every enabled content domain, validates it, copies the media it
references into the publish tree and writes the JSON data files.

Nothing is copied or written unless every domain validates.`,
	Args: cobra.NoArgs,
	RunE: runBuild,
}

func init() {
	buildCmd.Flags().StringVar(&buildMetricsFile, "metrics-file", "", "write Prometheus metrics to this textfile")
	buildCmd.Flags().StringVar(&buildReportFile, "report", "", "write the build report as JSON to this file")
	rootCmd.AddCommand(buildCmd)
}

func runBuild(cmd *cobra.Command, _ []string) error {
	settings, err := resolveSettings(cmd)
	if err != nil {
		return fmt.Errorf("load settings: %w", err)
	}

	var metrics driven.BuildMetrics
	var registry *prometheus.Metrics
	if buildMetricsFile != "" {
		registry = prometheus.New()
		metrics = registry
	}

	report, err := newBuilder(settings, metrics).Build(cmd.Context())

	// Failed builds are recorded too.
	if registry != nil {
		if werr := registry.WriteTextfile(buildMetricsFile); werr != nil {
			logger.Warn("could not write metrics: %v", werr)
		}
	}
	if err != nil {
		return fmt.Errorf("build failed: %w", err)
	}

	printReport(cmd.OutOrStdout(), report)

	if buildReportFile != "" {
		if err := writeReport(cmd.Context(), buildReportFile, report); err != nil {
			return fmt.Errorf("write report: %w", err)
		}
	}
	return nil
}
