package domain

import "time"

// AuditLogEntry is an immutable, append-only record of a ledger action.
type AuditLogEntry struct {
	AuditID   string         `json:"auditID"`
	Actor     string         `json:"actor"`
	Entity    string         `json:"entity"`
	Action    string         `json:"action"`
	EntityID  string         `json:"entityID"`
	Detail    map[string]any `json:"detail"`
	CreatedAt time.Time      `json:"createdAt"`
}
