package driven

// ConfigStore provides read access to the build configuration.
// Implementations handle parsing (TOML or YAML files) and type conversion.
// Nested tables are addressed with dot keys, e.g. "content.root".
type ConfigStore interface {
	// Get retrieves a configuration value by key.
	// Returns the value and a boolean indicating if the key exists.
	Get(key string) (any, bool)

	// GetString retrieves a string configuration value.
	// Returns empty string if key doesn't exist or isn't a string.
	GetString(key string) string

	// GetBool retrieves a boolean configuration value.
	// Returns false if key doesn't exist or isn't a boolean.
	GetBool(key string) bool

	// GetStringSlice retrieves a string slice configuration value.
	// Returns nil if key doesn't exist or isn't a slice.
	GetStringSlice(key string) []string

	// Set overrides a value in memory, e.g. from a CLI flag.
	// It is never written back to the file.
	Set(key string, value any)

	// Load reads configuration from storage.
	// A missing file leaves the store empty and is not an error.
	Load() error

	// Path returns the configuration file path.
	Path() string
}
