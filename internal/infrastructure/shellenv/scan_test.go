package shellenv

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sheldir/provsh/internal/domain"
)

func TestHasEffectiveAssignmentPOSIX(t *testing.T) {
	placeholders := []string{"<API_KEY>"}

	tests := []struct {
		name    string
		content string
		want    bool
	}{
		{name: "export with real value", content: `export Z_AI_API_KEY="existing-key"`, want: true},
		{name: "manual assignment without export", content: `Z_AI_API_KEY=manual-key`, want: true},
		{name: "single quoted value", content: `export Z_AI_API_KEY='existing-key'`, want: true},
		{name: "placeholder value is not effective", content: `export Z_AI_API_KEY="<API_KEY>"`, want: false},
		{name: "empty value is not effective", content: `export Z_AI_API_KEY=""`, want: false},
		{name: "commented assignment ignored", content: `# export Z_AI_API_KEY="existing-key"`, want: false},
		{name: "different variable ignored", content: `export OTHER_KEY="existing-key"`, want: false},
		{name: "prefix of another name does not match", content: `export Z_AI_API_KEY_2="existing-key"`, want: false},
		{name: "empty content", content: "", want: false},
		{
			name: "effective line found below noise",
			content: "# comment\n\nalias ll='ls -l'\nexport PATH=\"$PATH:/opt/bin\"\nexport Z_AI_API_KEY=\"k\"\n",
			want: true,
		},
		{
			name:    "indented assignment still recognized",
			content: "\texport Z_AI_API_KEY=\"k\"",
			want:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := HasEffectiveAssignment(tt.content, "Z_AI_API_KEY", domain.DialectZsh, placeholders)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestHasEffectiveAssignmentPowerShell(t *testing.T) {
	placeholders := []string{"<API_KEY>"}

	assert.True(t, HasEffectiveAssignment(`$env:Z_AI_API_KEY="k"`, "Z_AI_API_KEY", domain.DialectPowerShellCore, placeholders))
	assert.False(t, HasEffectiveAssignment(`$env:Z_AI_API_KEY="<API_KEY>"`, "Z_AI_API_KEY", domain.DialectPowerShellCore, placeholders))
	assert.False(t, HasEffectiveAssignment(`# $env:Z_AI_API_KEY="k"`, "Z_AI_API_KEY", domain.DialectPowerShellCore, placeholders))
	// A POSIX export line does not satisfy a PowerShell scan.
	assert.False(t, HasEffectiveAssignment(`export Z_AI_API_KEY="k"`, "Z_AI_API_KEY", domain.DialectPowerShellCore, placeholders))
}

func TestScannerSeesRenderedBlocks(t *testing.T) {
	// Render -> Upsert -> scan reports an effective assignment for every
	// dialect, for values that avoid the marker text.
	for _, dialect := range []domain.ShellDialect{
		domain.DialectZsh, domain.DialectBash,
		domain.DialectPowerShellDesktop, domain.DialectPowerShellCore,
	} {
		block := Render("MY_TOKEN", "abc123", dialect)
		content := Upsert("", block)
		assert.True(t, HasEffectiveAssignment(content, "MY_TOKEN", dialect, []string{"<API_KEY>"}),
			"dialect %s", dialect)
	}
}
