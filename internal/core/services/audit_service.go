package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/quadrantpm/property_ledger/internal/core/domain"
	portsrepo "github.com/quadrantpm/property_ledger/internal/core/ports/repositories"
	portssvc "github.com/quadrantpm/property_ledger/internal/core/ports/services"
	"github.com/quadrantpm/property_ledger/internal/middleware"
)

// auditService appends immutable audit records. A failed append is logged and
// swallowed: it must never roll back or fail an already-committed journal.
type auditService struct {
	auditRepo portsrepo.AuditRepository
}

// NewAuditService creates a new AuditService.
func NewAuditService(auditRepo portsrepo.AuditRepository) portssvc.AuditSvcFacade {
	return &auditService{auditRepo: auditRepo}
}

var _ portssvc.AuditSvcFacade = (*auditService)(nil)

// Log appends one audit row.
func (s *auditService) Log(ctx context.Context, actor, entity, action, entityID string, detail map[string]any) {
	entry := domain.AuditLogEntry{
		AuditID:   uuid.NewString(),
		Actor:     actor,
		Entity:    entity,
		Action:    action,
		EntityID:  entityID,
		Detail:    detail,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.auditRepo.SaveAuditLog(ctx, entry); err != nil {
		middleware.GetLoggerFromCtx(ctx).Error("Failed to write audit log entry",
			slog.String("error", err.Error()),
			slog.String("entity", entity),
			slog.String("action", action),
			slog.String("entity_id", entityID))
	}
}
