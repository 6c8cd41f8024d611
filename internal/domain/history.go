package domain

import "time"

// ProvisionRecord is one entry in the provision log.
type ProvisionRecord struct {
	Timestamp   time.Time       `json:"timestamp"`
	Variable    string          `json:"variable"`
	Status      ProvisionStatus `json:"status"`
	Reason      string          `json:"reason"`
	ProfilePath string          `json:"profile_path,omitempty"`
	Dialect     ShellDialect    `json:"dialect,omitempty"`
}
