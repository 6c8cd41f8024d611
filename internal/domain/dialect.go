package domain

import "fmt"

// ShellDialect enumerates the configuration dialects the provisioner can
// write. Both PowerShell variants currently share assignment and comment
// syntax, but they stay distinct values so platform-specific divergence
// (profile locations today, syntax tomorrow) has somewhere to live.
type ShellDialect string

const (
	DialectUnknown           ShellDialect = "unknown"
	DialectZsh               ShellDialect = "zsh"
	DialectBash              ShellDialect = "bash"
	DialectPowerShellDesktop ShellDialect = "powershell-desktop"
	DialectPowerShellCore    ShellDialect = "powershell-core"
)

// IsPOSIX reports whether the dialect belongs to the POSIX shell family.
func (d ShellDialect) IsPOSIX() bool {
	return d == DialectZsh || d == DialectBash
}

// IsPowerShell reports whether the dialect belongs to the PowerShell family.
func (d ShellDialect) IsPowerShell() bool {
	return d == DialectPowerShellDesktop || d == DialectPowerShellCore
}

// CommentPrefix returns the line-comment marker for the dialect.
func (d ShellDialect) CommentPrefix() string {
	// Both families use '#' today; kept per-dialect so they may diverge.
	return "#"
}

// AssignPrefix returns the token preceding a variable assignment in profile
// text: "export " for POSIX shells, "$env:" for PowerShell.
func (d ShellDialect) AssignPrefix() string {
	if d.IsPowerShell() {
		return "$env:"
	}
	return "export "
}

// AssignmentLine renders a complete assignment statement for the dialect.
// Values are wrapped in double quotes without further escaping; values that
// themselves contain double quotes are a documented limitation.
func (d ShellDialect) AssignmentLine(name, value string) string {
	if d.IsPowerShell() {
		return fmt.Sprintf(`$env:%s="%s"`, name, value)
	}
	return fmt.Sprintf(`export %s="%s"`, name, value)
}

// ReloadHint returns the command a user runs to pick up a freshly written
// profile without opening a new shell.
func (d ShellDialect) ReloadHint(profilePath string) string {
	if d.IsPowerShell() {
		return fmt.Sprintf(". %s", profilePath)
	}
	return fmt.Sprintf("source %s", profilePath)
}
