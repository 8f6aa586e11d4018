package services

import (
	"fmt"

	"github.com/ns-engineering/contentbuild/internal/core/domain"
	"github.com/ns-engineering/contentbuild/internal/core/ports/driven"
	"github.com/ns-engineering/contentbuild/internal/core/ports/driving"
)

// Config keys for build settings.
const (
	KeyContentRoot  = "content.root"
	KeyPublishRoot  = "publish.root"
	KeyOutputDir    = "output.dir"
	KeyBuildVersion = "build.version"
	KeyBuildDomains = "build.domains"
	KeyBuildStrict  = "build.strict"
	KeySiteBrand    = "site.brand"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// SettingsService resolves build settings from a config store.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{configStore: configStore}
}

// Get returns the configured settings, filling blanks with defaults.
// Unknown domain names are an error.
func (s *SettingsService) Get() (domain.BuildSettings, error) {
	defaults := domain.DefaultBuildSettings()

	settings := domain.BuildSettings{
		ContentRoot: s.getString(KeyContentRoot, defaults.ContentRoot),
		PublishRoot: s.getString(KeyPublishRoot, defaults.PublishRoot),
		OutputDir:   s.getString(KeyOutputDir, defaults.OutputDir),
		Version:     s.getString(KeyBuildVersion, defaults.Version),
		Brand:       s.getString(KeySiteBrand, defaults.Brand),
		Domains:     defaults.Domains,
		Strict:      s.configStore.GetBool(KeyBuildStrict),
	}

	names := s.configStore.GetStringSlice(KeyBuildDomains)
	if len(names) == 0 {
		return settings, nil
	}

	selected := make(map[domain.ContentDomain]bool, len(names))
	for _, name := range names {
		d, err := domain.ParseContentDomain(name)
		if err != nil {
			return domain.BuildSettings{}, fmt.Errorf("%s: %w", KeyBuildDomains, err)
		}
		selected[d] = true
	}

	// Build order is fixed regardless of how domains were listed.
	settings.Domains = settings.Domains[:0]
	for _, d := range domain.ContentDomains {
		if selected[d] {
			settings.Domains = append(settings.Domains, d)
		}
	}
	return settings, nil
}

func (s *SettingsService) getString(key, defaultVal string) string {
	if val := s.configStore.GetString(key); val != "" {
		return val
	}
	return defaultVal
}
