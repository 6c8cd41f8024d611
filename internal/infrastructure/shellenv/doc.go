// Package shellenv provisions environment variables into persistent shell
// profiles (zsh, bash, PowerShell) idempotently.
//
// The engine reconciles four sources of truth — the live process
// environment, the settings sidecar (via a lookup capability), whatever a
// human already wrote into the profile, and dialect-specific syntax — into
// one decision per call: skip, write a marked block, or report that
// automatic provisioning is impossible.
//
// Everything is synchronous, bounded string processing plus at most one
// directory-create and one file read/write pair. There is no locking:
// callers must serialize provisioning calls against the same profile path
// within a process, and concurrent writes from independent processes to the
// same profile can race (read-modify-write is not atomic across process
// boundaries).
package shellenv
