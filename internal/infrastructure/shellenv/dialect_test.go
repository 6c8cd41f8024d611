package shellenv

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sheldir/provsh/internal/domain"
)

func snapshot(os string, vars map[string]string) domain.EnvSnapshot {
	if vars == nil {
		vars = map[string]string{}
	}
	return domain.EnvSnapshot{OS: os, Vars: vars}
}

func TestDetectPOSIX(t *testing.T) {
	assert.Equal(t, domain.DialectZsh, Detect(snapshot("darwin", map[string]string{"SHELL": "/bin/zsh"})))
	assert.Equal(t, domain.DialectBash, Detect(snapshot("linux", map[string]string{"SHELL": "/usr/bin/bash"})))
	assert.Equal(t, domain.DialectUnknown, Detect(snapshot("linux", map[string]string{"SHELL": "/usr/bin/fish"})))
	assert.Equal(t, domain.DialectUnknown, Detect(snapshot("linux", nil)))
}

func TestDetectWindows(t *testing.T) {
	assert.Equal(t, domain.DialectPowerShellDesktop, Detect(snapshot("windows", map[string]string{
		"PSModulePath": `C:\Users\u\Documents\WindowsPowerShell\Modules`,
	})))
	assert.Equal(t, domain.DialectPowerShellCore, Detect(snapshot("windows", map[string]string{
		"PSModulePath": `C:\Users\u\Documents\PowerShell\Modules`,
		"PSEdition":    "Core",
	})))
	// Git Bash: no PowerShell signal, SHELL points at bash.
	assert.Equal(t, domain.DialectBash, Detect(snapshot("windows", map[string]string{
		"SHELL": "/usr/bin/bash",
	})))
	assert.Equal(t, domain.DialectUnknown, Detect(snapshot("windows", nil)))
}

func TestDetectFromPath(t *testing.T) {
	assert.Equal(t, domain.DialectZsh, DetectFromPath("/home/u/.zshrc"))
	assert.Equal(t, domain.DialectBash, DetectFromPath("/home/u/.bashrc"))
	assert.Equal(t, domain.DialectBash, DetectFromPath("/home/u/.bash_profile"))
	assert.Equal(t, domain.DialectPowerShellCore, DetectFromPath(`C:\Users\u\Documents\PowerShell\Microsoft.PowerShell_profile.ps1`))
	assert.Equal(t, domain.DialectPowerShellCore, DetectFromPath("profile.PS1"))
	assert.Equal(t, domain.DialectUnknown, DetectFromPath("/home/u/.profile"))
	assert.Equal(t, domain.DialectUnknown, DetectFromPath(""))
}

func TestDialectSyntax(t *testing.T) {
	assert.Equal(t, `export K="v"`, domain.DialectZsh.AssignmentLine("K", "v"))
	assert.Equal(t, `$env:K="v"`, domain.DialectPowerShellCore.AssignmentLine("K", "v"))
	assert.Equal(t, "export ", domain.DialectBash.AssignPrefix())
	assert.Equal(t, "$env:", domain.DialectPowerShellDesktop.AssignPrefix())
	assert.Equal(t, "#", domain.DialectZsh.CommentPrefix())
	assert.Equal(t, "#", domain.DialectPowerShellCore.CommentPrefix())
}
