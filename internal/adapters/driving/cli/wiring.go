package cli

import (
	"github.com/spf13/cobra"

	"github.com/ns-engineering/contentbuild/internal/adapters/driven/config/file"
	"github.com/ns-engineering/contentbuild/internal/adapters/driven/csvfile"
	"github.com/ns-engineering/contentbuild/internal/adapters/driven/media/filesystem"
	output "github.com/ns-engineering/contentbuild/internal/adapters/driven/output/file"
	"github.com/ns-engineering/contentbuild/internal/core/domain"
	"github.com/ns-engineering/contentbuild/internal/core/ports/driven"
	"github.com/ns-engineering/contentbuild/internal/core/ports/driving"
	"github.com/ns-engineering/contentbuild/internal/core/services"
)

// flagKeys maps persistent flags onto the config keys they override.
var flagKeys = map[string]string{
	"content": services.KeyContentRoot,
	"public":  services.KeyPublishRoot,
	"out":     services.KeyOutputDir,
	"domains": services.KeyBuildDomains,
}

// newBuilder wires the pipeline adapters for settings. Tests replace it.
var newBuilder = func(settings domain.BuildSettings, metrics driven.BuildMetrics) driving.Builder {
	return services.NewBuildOrchestrator(
		settings,
		csvfile.New(),
		filesystem.NewResolver(settings.ContentRoot),
		filesystem.NewStager(settings.ContentRoot, settings.PublishRoot),
		output.NewWriter(settings.OutputDir),
		metrics,
	)
}

// resolveSettings loads the config file and applies any flags the user set.
func resolveSettings(cmd *cobra.Command) (domain.BuildSettings, error) {
	store, err := file.NewConfigStore(cfgFile)
	if err != nil {
		return domain.BuildSettings{}, err
	}

	flags := cmd.Flags()
	for name, key := range flagKeys {
		if !flags.Changed(name) {
			continue
		}
		if name == "domains" {
			values, err := flags.GetStringSlice(name)
			if err != nil {
				return domain.BuildSettings{}, err
			}
			store.Set(key, values)
			continue
		}
		store.Set(key, flags.Lookup(name).Value.String())
	}

	return services.NewSettingsService(store).Get()
}
