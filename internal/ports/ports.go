// Package ports defines the interfaces (ports) for the hexagonal architecture.
//
// This package establishes the contract between the application core and
// external adapters (infrastructure). Following the Ports and Adapters
// (Hexagonal) pattern, these interfaces allow the application to remain
// independent of specific implementations like storage backends or CLI
// frameworks.
package ports

import (
	"context"

	"github.com/sheldir/provsh/internal/domain"
)

// ConfigProvider loads the latest configuration from persistent storage.
// Implementations typically read from ~/.provsh/config.yaml.
type ConfigProvider interface {
	Load(context.Context) (domain.Config, error)
}

// SettingsProvider reads string fields out of the JSON settings sidecar.
// Lookup must tolerate a missing or malformed sidecar by returning "".
type SettingsProvider interface {
	Lookup(field string) string
	Path() string
}

// Provisioner runs the end-to-end environment-variable provisioning
// decision for one request. It never returns an error: every outcome,
// including I/O failure on the final write, is folded into the result.
type Provisioner interface {
	Provision(req domain.ProvisionRequest) domain.ProvisionResult
}

// Inspector answers where a variable is currently configured, without
// mutating anything.
type Inspector interface {
	Inspect(variable, profilePath string, placeholders []string) domain.VariableStatus
}

// ProvisionLog persists provisioning attempts for later inspection.
type ProvisionLog interface {
	Save(record domain.ProvisionRecord) error
	Records(limit int) ([]domain.ProvisionRecord, error)
	Clear() error
	ExportJSON(dest string) error
	Path() string
}

// Logger provides structured logging abstraction for the application layer.
// Implementations can route to different backends (stdout, files, external services).
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, err error, fields map[string]interface{})
}
