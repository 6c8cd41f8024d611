package shellenv

import (
	"os"
	"path/filepath"

	"github.com/sheldir/provsh/internal/domain"
	"github.com/sheldir/provsh/internal/pkg/filesystem"
)

// Locator resolves the canonical profile file path for a dialect. Home is
// injectable for tests; when empty, the real home directory is used.
type Locator struct {
	Home string
}

// Resolve returns the profile path for the dialect, or "" when the dialect
// is unknown. "" is a defined "cannot auto-locate" outcome, not an error;
// the orchestrator translates it into a failed result.
//
// Bash prefers an rc file that already exists over a profile file that does
// not; when neither exists the canonical ~/.bashrc wins. The locator never
// creates directories, the orchestrator does that best-effort before the
// write.
func (l Locator) Resolve(dialect domain.ShellDialect) string {
	home := l.Home
	if home == "" {
		home = filesystem.UserHomeDir()
	}
	switch dialect {
	case domain.DialectZsh:
		return filepath.Join(home, ".zshrc")
	case domain.DialectBash:
		candidates := []string{
			filepath.Join(home, ".bashrc"),
			filepath.Join(home, ".bash_profile"),
		}
		for _, candidate := range candidates {
			if info, err := os.Stat(candidate); err == nil && info.Mode().IsRegular() {
				return candidate
			}
		}
		return candidates[0]
	case domain.DialectPowerShellDesktop:
		return filepath.Join(home, "Documents", "WindowsPowerShell", "Microsoft.PowerShell_profile.ps1")
	case domain.DialectPowerShellCore:
		return filepath.Join(home, "Documents", "PowerShell", "Microsoft.PowerShell_profile.ps1")
	}
	return ""
}
