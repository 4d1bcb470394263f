package pgsql

import (
	"context"
	"encoding/json"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/quadrantpm/property_ledger/internal/apperrors"
	"github.com/quadrantpm/property_ledger/internal/core/domain"
	portsrepo "github.com/quadrantpm/property_ledger/internal/core/ports/repositories"
	"github.com/quadrantpm/property_ledger/internal/utils/mapping"
)

type PgxAuditRepository struct {
	BaseRepository
}

// newPgxAuditRepository creates a new repository for the append-only audit log.
func newPgxAuditRepository(pool *pgxpool.Pool) portsrepo.AuditRepository {
	return &PgxAuditRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure PgxAuditRepository implements portsrepo.AuditRepository
var _ portsrepo.AuditRepository = (*PgxAuditRepository)(nil)

// SaveAuditLog appends one audit row. Detail is serialized to JSONB.
func (r *PgxAuditRepository) SaveAuditLog(ctx context.Context, entry domain.AuditLogEntry) error {
	m := mapping.ToModelAuditLogEntry(entry)

	detail, err := json.Marshal(m.Detail)
	if err != nil {
		return apperrors.NewAppError(500, "failed to marshal audit detail", err)
	}

	query := `
		INSERT INTO audit_log (audit_id, actor, entity, action, entity_id, detail, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	_, err = r.Pool.Exec(ctx, query,
		m.AuditID,
		m.Actor,
		m.Entity,
		m.Action,
		m.EntityID,
		detail,
		m.CreatedAt,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to insert audit log entry", err)
	}
	return nil
}
