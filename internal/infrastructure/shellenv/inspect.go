package shellenv

import (
	"os"

	"github.com/sheldir/provsh/internal/domain"
	"github.com/sheldir/provsh/internal/ports"
)

// Inspect reports where variable is currently configured, running the same
// detection, location, and scanning the provisioning path uses, read-only.
func (p *Provisioner) Inspect(variable, profilePath string, placeholders []string) domain.VariableStatus {
	status := domain.VariableStatus{Variable: variable}

	if profilePath != "" {
		status.ProfilePath = profilePath
		status.Dialect = DetectFromPath(profilePath)
		if status.Dialect == domain.DialectUnknown {
			status.Dialect = Detect(p.Env)
		}
	} else {
		status.Dialect = Detect(p.Env)
		status.ProfilePath = p.Locator.Resolve(status.Dialect)
	}

	if live := p.Env.Get(variable); live != "" && !isPlaceholder(live, placeholders) {
		status.SetInEnv = true
	}

	if status.ProfilePath != "" {
		if data, err := os.ReadFile(status.ProfilePath); err == nil {
			status.ProfileExists = true
			status.SetInProfile = HasEffectiveAssignment(string(data), variable, status.Dialect, placeholders)
		}
	}

	return status
}

var _ ports.Inspector = (*Provisioner)(nil)
