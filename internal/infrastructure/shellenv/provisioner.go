package shellenv

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/sheldir/provsh/internal/domain"
	"github.com/sheldir/provsh/internal/ports"
)

// Outcome reasons surfaced to callers. The three "already satisfied" causes
// stay distinguishable so the surrounding CLI can print a precise message.
const (
	reasonMissingValue     = "missing API key"
	reasonSetInEnvironment = "already set in environment"
	reasonUnsupportedShell = "unsupported shell; set manually"
	reasonSetInProfile     = "already set in shell profile"
	reasonProfileCurrent   = "shell profile already up to date"
)

// Provisioner writes a single environment variable into a shell profile,
// idempotently. Each call is one atomic decision: read the profile once,
// decide, write at most once. There is no cross-process locking, so callers
// must not run concurrent provisioners against the same profile path.
type Provisioner struct {
	// Env is the environment snapshot detection runs against.
	Env domain.EnvSnapshot
	// Locator resolves profile paths when no explicit path is given.
	Locator Locator
	// Logger is optional.
	Logger ports.Logger
}

// NewProvisioner builds a provisioner over the live process environment.
func NewProvisioner(log ports.Logger) *Provisioner {
	return &Provisioner{Env: SnapshotEnv(), Logger: log}
}

// Provision runs the decision procedure for one request. It never returns a
// Go error: configuration absence and already-satisfied states come back as
// skipped, unresolvable environments and write failures as failed.
func (p *Provisioner) Provision(req domain.ProvisionRequest) domain.ProvisionResult {
	value, ok := p.resolveValue(req)
	if !ok {
		return p.skip(req, domain.ProvisionResult{
			Status:   domain.StatusSkipped,
			Reason:   reasonMissingValue,
			Variable: req.Variable,
		})
	}

	if live := p.Env.Get(req.Variable); live != "" && !req.IsPlaceholder(live) {
		return p.skip(req, domain.ProvisionResult{
			Status:   domain.StatusSkipped,
			Reason:   reasonSetInEnvironment,
			Variable: req.Variable,
		})
	}

	dialect, path := p.resolveProfile(req)
	if dialect == domain.DialectUnknown || path == "" {
		return domain.ProvisionResult{
			Status:   domain.StatusFailed,
			Reason:   reasonUnsupportedShell,
			Variable: req.Variable,
		}
	}

	// Best-effort: some environments forbid creating the parent directory
	// but still allow writing an already-present profile.
	_ = os.MkdirAll(filepath.Dir(path), domain.DirectoryPermissions)

	doc := readProfile(path)

	if HasEffectiveAssignment(doc.RawContent, req.Variable, dialect, req.Placeholders) {
		return p.skip(req, domain.ProvisionResult{
			Status:      domain.StatusSkipped,
			Reason:      reasonSetInProfile,
			Variable:    req.Variable,
			Dialect:     dialect,
			ProfilePath: path,
		})
	}

	block := Render(req.Variable, value, dialect)
	next := Upsert(doc.RawContent, block)
	if next == doc.RawContent {
		return p.skip(req, domain.ProvisionResult{
			Status:      domain.StatusSkipped,
			Reason:      reasonProfileCurrent,
			Variable:    req.Variable,
			Dialect:     dialect,
			ProfilePath: path,
		})
	}

	if err := os.WriteFile(path, []byte(next), domain.ProfilePermissions); err != nil {
		if p.Logger != nil {
			p.Logger.Error("profile write failed", err, map[string]interface{}{"path": path})
		}
		return domain.ProvisionResult{
			Status:      domain.StatusFailed,
			Reason:      fmt.Sprintf("writing %s: %v", path, err),
			Variable:    req.Variable,
			Dialect:     dialect,
			ProfilePath: path,
		}
	}

	if p.Logger != nil {
		p.Logger.Info("profile updated", map[string]interface{}{
			"variable": req.Variable,
			"path":     path,
			"dialect":  string(dialect),
		})
	}
	return domain.ProvisionResult{
		Status:      domain.StatusUpdated,
		Reason:      fmt.Sprintf("wrote %s to %s", req.Variable, path),
		Variable:    req.Variable,
		Dialect:     dialect,
		ProfilePath: path,
		ReloadHint:  dialect.ReloadHint(path),
	}
}

// resolveValue picks the effective desired value: the explicit request value
// when it is real, otherwise whatever the settings lookup yields.
func (p *Provisioner) resolveValue(req domain.ProvisionRequest) (string, bool) {
	if req.Value != "" && !req.IsPlaceholder(req.Value) {
		return req.Value, true
	}
	if req.Lookup != nil {
		if v := req.Lookup(); v != "" && !req.IsPlaceholder(v) {
			return v, true
		}
	}
	return "", false
}

// resolveProfile determines the dialect and profile path. An explicit path
// always wins; its dialect comes from the path's naming convention, falling
// back to environment detection when the name is inconclusive.
func (p *Provisioner) resolveProfile(req domain.ProvisionRequest) (domain.ShellDialect, string) {
	if req.ProfilePath != "" {
		dialect := DetectFromPath(req.ProfilePath)
		if dialect == domain.DialectUnknown {
			dialect = Detect(p.Env)
		}
		return dialect, req.ProfilePath
	}
	dialect := Detect(p.Env)
	return dialect, p.Locator.Resolve(dialect)
}

func (p *Provisioner) skip(req domain.ProvisionRequest, res domain.ProvisionResult) domain.ProvisionResult {
	if p.Logger != nil {
		p.Logger.Debug("provision skipped", map[string]interface{}{
			"variable": req.Variable,
			"reason":   res.Reason,
		})
	}
	return res
}

func readProfile(path string) domain.ProfileDocument {
	data, err := os.ReadFile(path)
	if err != nil {
		return domain.ProfileDocument{Path: path}
	}
	return domain.ProfileDocument{Path: path, RawContent: string(data), ExistedBeforeRead: true}
}

var _ ports.Provisioner = (*Provisioner)(nil)
