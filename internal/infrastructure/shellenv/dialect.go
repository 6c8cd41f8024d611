package shellenv

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/sheldir/provsh/internal/domain"
)

// Environment variables inspected during dialect detection.
const (
	envShell        = "SHELL"
	envPSModulePath = "PSModulePath"
	envPSEdition    = "PSEdition"
)

// SnapshotEnv captures the live process environment and platform as an
// explicit snapshot. Detection itself is a pure function of the snapshot.
func SnapshotEnv() domain.EnvSnapshot {
	vars := make(map[string]string)
	for _, kv := range os.Environ() {
		if i := strings.IndexByte(kv, '='); i > 0 {
			vars[kv[:i]] = kv[i+1:]
		}
	}
	return domain.EnvSnapshot{OS: runtime.GOOS, Vars: vars}
}

// Detect infers the active shell dialect from an environment snapshot.
// It never fails: DialectUnknown is a first-class outcome meaning "cannot
// provision automatically".
func Detect(env domain.EnvSnapshot) domain.ShellDialect {
	if env.Windows() {
		if env.Get(envPSModulePath) != "" {
			if strings.EqualFold(env.Get(envPSEdition), "Core") {
				return domain.DialectPowerShellCore
			}
			return domain.DialectPowerShellDesktop
		}
		// Git Bash and friends set SHELL even on Windows.
		if strings.Contains(env.Get(envShell), "bash") {
			return domain.DialectBash
		}
		return domain.DialectUnknown
	}
	switch filepath.Base(env.Get(envShell)) {
	case "zsh":
		return domain.DialectZsh
	case "bash":
		return domain.DialectBash
	}
	return domain.DialectUnknown
}

// DetectFromPath infers the dialect from a profile file's naming
// convention. Both PowerShell variants share syntax, so ".ps1" maps to the
// core dialect as the family representative.
func DetectFromPath(path string) domain.ShellDialect {
	if strings.EqualFold(filepath.Ext(path), ".ps1") {
		return domain.DialectPowerShellCore
	}
	switch filepath.Base(path) {
	case ".zshrc":
		return domain.DialectZsh
	case ".bashrc", ".bash_profile":
		return domain.DialectBash
	}
	return domain.DialectUnknown
}
