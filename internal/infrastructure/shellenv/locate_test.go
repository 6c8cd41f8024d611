package shellenv

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sheldir/provsh/internal/domain"
)

func TestLocatorZsh(t *testing.T) {
	home := t.TempDir()
	loc := Locator{Home: home}
	assert.Equal(t, filepath.Join(home, ".zshrc"), loc.Resolve(domain.DialectZsh))
}

func TestLocatorBashPrefersExistingRC(t *testing.T) {
	home := t.TempDir()
	loc := Locator{Home: home}

	// Neither exists: canonical .bashrc wins.
	assert.Equal(t, filepath.Join(home, ".bashrc"), loc.Resolve(domain.DialectBash))

	// Only .bash_profile exists: the existing file wins over the default.
	profile := filepath.Join(home, ".bash_profile")
	require.NoError(t, os.WriteFile(profile, []byte("# hi\n"), 0o644))
	assert.Equal(t, profile, loc.Resolve(domain.DialectBash))

	// Both exist: .bashrc comes first.
	rc := filepath.Join(home, ".bashrc")
	require.NoError(t, os.WriteFile(rc, []byte("# hi\n"), 0o644))
	assert.Equal(t, rc, loc.Resolve(domain.DialectBash))
}

func TestLocatorPowerShell(t *testing.T) {
	home := t.TempDir()
	loc := Locator{Home: home}
	assert.Equal(t,
		filepath.Join(home, "Documents", "WindowsPowerShell", "Microsoft.PowerShell_profile.ps1"),
		loc.Resolve(domain.DialectPowerShellDesktop))
	assert.Equal(t,
		filepath.Join(home, "Documents", "PowerShell", "Microsoft.PowerShell_profile.ps1"),
		loc.Resolve(domain.DialectPowerShellCore))
}

func TestLocatorUnknownDialect(t *testing.T) {
	loc := Locator{Home: t.TempDir()}
	assert.Equal(t, "", loc.Resolve(domain.DialectUnknown))
}
