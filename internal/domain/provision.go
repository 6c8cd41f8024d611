package domain

// SettingsLookup resolves a value from the caller's settings store. An empty
// string means "no value configured". Implementations must never fail: a
// missing or malformed store reads as absence.
type SettingsLookup func() string

// ProvisionRequest describes one provisioning attempt for a single
// environment variable. It is constructed by the caller and never mutated by
// the engine.
type ProvisionRequest struct {
	// Variable is the environment variable name, e.g. "Z_AI_API_KEY".
	Variable string
	// Value is the explicitly requested value; empty means "consult the
	// settings lookup".
	Value string
	// Placeholders are sentinel strings equivalent to absence, e.g.
	// "<API_KEY>".
	Placeholders []string
	// ProfilePath, when non-empty, bypasses dialect-based profile location
	// entirely. Used for overrides and deterministic tests.
	ProfilePath string
	// Lookup is the settings-store capability; nil means no store.
	Lookup SettingsLookup
}

// IsPlaceholder reports whether value matches one of the request's
// placeholder sentinels.
func (r ProvisionRequest) IsPlaceholder(value string) bool {
	for _, p := range r.Placeholders {
		if value == p {
			return true
		}
	}
	return false
}

// ProvisionStatus tags the outcome of a provisioning attempt.
type ProvisionStatus string

const (
	// StatusUpdated means the profile file was rewritten.
	StatusUpdated ProvisionStatus = "updated"
	// StatusSkipped means no write was needed (value absent or already
	// effective).
	StatusSkipped ProvisionStatus = "skipped"
	// StatusFailed means the variable could not be provisioned
	// automatically.
	StatusFailed ProvisionStatus = "failed"
)

// ProvisionResult is the structured outcome of one provisioning attempt.
// The engine never returns an unstructured error for decision-level
// conditions; everything surfaces here.
type ProvisionResult struct {
	Status      ProvisionStatus
	Reason      string
	Variable    string
	Dialect     ShellDialect
	ProfilePath string
	// ReloadHint is the command to source the updated profile. Set only on
	// StatusUpdated.
	ReloadHint string
}

// Updated reports whether the profile file was mutated.
func (r ProvisionResult) Updated() bool { return r.Status == StatusUpdated }

// MarkedBlock is the delimited region the engine owns inside a profile:
// a start marker comment, one assignment statement, an end marker comment.
// Marker strings are fixed literals per variable; a profile must never hold
// two blocks with the same markers after an engine write.
type MarkedBlock struct {
	Start string
	End   string
	Body  string
}

// VariableStatus reports where (if anywhere) a variable is effectively set.
type VariableStatus struct {
	Variable      string
	Dialect       ShellDialect
	ProfilePath   string
	ProfileExists bool
	SetInEnv      bool
	SetInProfile  bool
}

// Configured reports whether the variable is effectively set anywhere.
func (s VariableStatus) Configured() bool {
	return s.SetInEnv || s.SetInProfile
}

// ProfileDocument is the in-memory snapshot of a profile file, owned by a
// single provisioning call. It is read once at the start of the call and
// written back at most once at the end.
type ProfileDocument struct {
	Path              string
	RawContent        string
	ExistedBeforeRead bool
}
