package services

import (
	"context"

	"github.com/sheldir/provsh/internal/domain"
	"github.com/sheldir/provsh/internal/ports"
)

// StatusService answers "is this variable configured?" without mutating
// anything.
type StatusService struct {
	ConfigProvider ports.ConfigProvider
	Inspector      ports.Inspector
}

// Check inspects the live environment and the resolved profile for variable.
func (s *StatusService) Check(ctx context.Context, variable, profilePath string) (domain.VariableStatus, error) {
	cfg, err := s.ConfigProvider.Load(ctx)
	if err != nil {
		return domain.VariableStatus{}, err
	}
	return s.Inspector.Inspect(variable, profilePath, cfg.Provision.Placeholders), nil
}
