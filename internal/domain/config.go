package domain

// Config mirrors ~/.provsh/config.yaml.
type Config struct {
	ConfigFormatVersion string            `yaml:"config_format_version"`
	Provision           ProvisionSettings `yaml:"provision"`
	History             HistorySettings   `yaml:"history"`
}

// ProvisionSettings controls how variables are provisioned.
type ProvisionSettings struct {
	// Placeholders are values treated as "not configured".
	Placeholders []string `yaml:"placeholders"`
	// SettingsFile is the JSON sidecar consulted when no explicit value is
	// given.
	SettingsFile string `yaml:"settings_file"`
	// SettingsField maps a variable name to the sidecar field holding its
	// value. Variables not listed fall back to DefaultField.
	SettingsField map[string]string `yaml:"settings_field"`
	// DefaultField is the sidecar field used when no per-variable mapping
	// exists.
	DefaultField string `yaml:"default_field"`
}

// HistorySettings controls the provision log.
type HistorySettings struct {
	Enabled bool   `yaml:"enabled"`
	Store   string `yaml:"store"` // "sqlite" or "file"
}

// FieldFor returns the sidecar field name for a variable.
func (p ProvisionSettings) FieldFor(variable string) string {
	if field, ok := p.SettingsField[variable]; ok {
		return field
	}
	return p.DefaultField
}
