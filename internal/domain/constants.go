package domain

// File permissions constants
const (
	// DirectoryPermissions is the default permission for directories (rwxr-xr-x)
	DirectoryPermissions = 0o755
	// ProfilePermissions is the permission for newly created profile files (rw-r--r--)
	ProfilePermissions = 0o644
	// SecureFilePermissions is the permission for sensitive files (rw-------)
	SecureFilePermissions = 0o600
)

// Provisioning defaults
const (
	// DefaultPlaceholder is the sentinel written by installers that have not
	// been given a real key yet.
	DefaultPlaceholder = "<API_KEY>"
	// DefaultSettingsField is the sidecar field consulted when no
	// per-variable mapping is configured.
	DefaultSettingsField = "api_key"
)

// History constants
const (
	// DefaultHistoryLimit is the default number of provision log entries to display
	DefaultHistoryLimit = 20
)

// Time formats
const (
	// TimestampFormat is the standard timestamp format
	TimestampFormat = "2006-01-02T15:04:05Z07:00"
)
