package driving

import "github.com/ns-engineering/contentbuild/internal/core/domain"

// SettingsService resolves build settings.
type SettingsService interface {
	// Get returns the effective settings: flags over file over defaults.
	Get() (domain.BuildSettings, error)
}
