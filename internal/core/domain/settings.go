package domain

// Default build settings.
const (
	DefaultContentRoot = "content"
	DefaultPublishRoot = "public"
	DefaultOutputDir   = "src/data/generated"
	DefaultBrand       = "NS Engineering"
)

// BuildSettings holds the resolved configuration for one build.
type BuildSettings struct {
	// ContentRoot is the tree holding CSVs and per-entity media.
	ContentRoot string

	// PublishRoot is the tree served by the static web server.
	PublishRoot string

	// OutputDir receives the generated JSON artifacts.
	OutputDir string

	// Version is stamped into every artifact envelope.
	Version string

	// Brand prefixes generated hero alt text.
	Brand string

	// Domains selects which content domains are built.
	Domains []ContentDomain

	// Strict makes validation fail when any warning is reported.
	Strict bool
}

// DefaultBuildSettings returns the settings used when nothing is configured.
func DefaultBuildSettings() BuildSettings {
	return BuildSettings{
		ContentRoot: DefaultContentRoot,
		PublishRoot: DefaultPublishRoot,
		OutputDir:   DefaultOutputDir,
		Version:     DefaultBuildVersion,
		Brand:       DefaultBrand,
		Domains:     append([]ContentDomain(nil), ContentDomains...),
	}
}

// Enabled reports whether d is selected for building.
func (s BuildSettings) Enabled(d ContentDomain) bool {
	for _, e := range s.Domains {
		if e == d {
			return true
		}
	}
	return false
}
