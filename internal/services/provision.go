// Package services holds the application use cases, composed from ports.
package services

import (
	"context"
	"time"

	"github.com/sheldir/provsh/internal/domain"
	"github.com/sheldir/provsh/internal/ports"
)

// ProvisionInput is the caller-facing shape of one provisioning request.
type ProvisionInput struct {
	Variable string
	Value    string
	// ProfilePath overrides dialect-based profile location when non-empty.
	ProfilePath string
	// ExtraPlaceholders extend the configured placeholder set for this call.
	ExtraPlaceholders []string
}

// ProvisionService wires configuration, the settings sidecar, the
// provisioning engine, and the provision log into the end-to-end use case.
type ProvisionService struct {
	ConfigProvider ports.ConfigProvider
	Settings       ports.SettingsProvider
	Provisioner    ports.Provisioner
	Log            ports.ProvisionLog
	Logger         ports.Logger
	// Now is injectable for tests; nil means time.Now.
	Now func() time.Time
}

// Run provisions one variable and records the outcome. The returned error
// covers infrastructure problems only (config unreadable); provisioning
// outcomes, including failures, live in the result.
func (s *ProvisionService) Run(ctx context.Context, input ProvisionInput) (domain.ProvisionResult, error) {
	cfg, err := s.ConfigProvider.Load(ctx)
	if err != nil {
		return domain.ProvisionResult{}, err
	}

	req := domain.ProvisionRequest{
		Variable:     input.Variable,
		Value:        input.Value,
		Placeholders: append(append([]string{}, cfg.Provision.Placeholders...), input.ExtraPlaceholders...),
		ProfilePath:  input.ProfilePath,
	}
	if s.Settings != nil {
		field := cfg.Provision.FieldFor(input.Variable)
		req.Lookup = func() string { return s.Settings.Lookup(field) }
	}

	result := s.Provisioner.Provision(req)

	if cfg.History.Enabled && s.Log != nil {
		record := domain.ProvisionRecord{
			Timestamp:   s.now(),
			Variable:    result.Variable,
			Status:      result.Status,
			Reason:      result.Reason,
			ProfilePath: result.ProfilePath,
			Dialect:     result.Dialect,
		}
		if err := s.Log.Save(record); err != nil && s.Logger != nil {
			s.Logger.Warn("provision log write failed", map[string]interface{}{"error": err.Error()})
		}
	}

	return result, nil
}

func (s *ProvisionService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}
