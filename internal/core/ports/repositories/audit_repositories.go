package repositories

import (
	"context"

	"github.com/quadrantpm/property_ledger/internal/core/domain"
)

// AuditRepository appends immutable audit log rows. There are no read or
// delete operations: the log is append-only by design.
type AuditRepository interface {
	SaveAuditLog(ctx context.Context, entry domain.AuditLogEntry) error
}
