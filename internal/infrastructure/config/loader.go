package config

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/sheldir/provsh/internal/domain"
	"github.com/sheldir/provsh/internal/pkg/filesystem"
	"github.com/sheldir/provsh/internal/ports"
)

// FileLoader loads YAML configuration from ~/.provsh/config.yaml
// (overridable via PROVSH_CONFIG).
type FileLoader struct {
	overridePath string
}

// NewFileLoader builds a new loader.
func NewFileLoader(path string) *FileLoader {
	return &FileLoader{overridePath: path}
}

// Load implements ports.ConfigProvider. A missing config file is
// materialized with defaults on first use.
func (l *FileLoader) Load(context.Context) (domain.Config, error) {
	path := l.resolvePath()
	if err := ensureConfigDir(path); err != nil {
		return domain.Config{}, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			cfg := defaultConfig()
			if err := writeDefault(path, cfg); err != nil {
				return domain.Config{}, err
			}
			return cfg, nil
		}
		return domain.Config{}, err
	}

	var cfg domain.Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return domain.Config{}, err
	}

	return hydrateDefaults(cfg), nil
}

// Path returns the config file location the loader reads from.
func (l *FileLoader) Path() string {
	return l.resolvePath()
}

func (l *FileLoader) resolvePath() string {
	if l.overridePath != "" {
		return l.overridePath
	}
	if custom := os.Getenv("PROVSH_CONFIG"); custom != "" {
		return filesystem.ExpandPath(custom)
	}
	return filepath.Join(filesystem.UserHomeDir(), ".provsh", "config.yaml")
}

func ensureConfigDir(path string) error {
	return os.MkdirAll(filepath.Dir(path), domain.DirectoryPermissions)
}

func writeDefault(path string, cfg domain.Config) error {
	raw, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, raw, domain.SecureFilePermissions)
}

func defaultConfig() domain.Config {
	return domain.Config{
		ConfigFormatVersion: "1",
		Provision: domain.ProvisionSettings{
			Placeholders: []string{domain.DefaultPlaceholder},
			SettingsFile: filepath.Join(filesystem.UserHomeDir(), ".provsh", "settings.json"),
			DefaultField: domain.DefaultSettingsField,
		},
		History: domain.HistorySettings{
			Enabled: true,
			Store:   "sqlite",
		},
	}
}

func hydrateDefaults(cfg domain.Config) domain.Config {
	if len(cfg.Provision.Placeholders) == 0 {
		cfg.Provision.Placeholders = []string{domain.DefaultPlaceholder}
	}
	if cfg.Provision.DefaultField == "" {
		cfg.Provision.DefaultField = domain.DefaultSettingsField
	}
	if cfg.History.Store == "" {
		cfg.History.Store = "sqlite"
	}
	return cfg
}

var _ ports.ConfigProvider = (*FileLoader)(nil)
