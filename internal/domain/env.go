package domain

// EnvSnapshot is an explicit, immutable view of the process environment plus
// the platform identifier. Dialect detection is a pure function of a
// snapshot, so tests never have to mutate real process state.
type EnvSnapshot struct {
	// OS is the platform identifier in runtime.GOOS form.
	OS string
	// Vars maps variable names to values.
	Vars map[string]string
}

// Get returns the value of name, or "" when unset.
func (e EnvSnapshot) Get(name string) string {
	return e.Vars[name]
}

// Windows reports whether the snapshot was taken on Windows.
func (e EnvSnapshot) Windows() bool {
	return e.OS == "windows"
}
