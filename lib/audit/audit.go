package audit

import (
	log "github.com/sirupsen/logrus"

	auditstore "hr-automation-hub/lib/audit/store"
	dbmodels "hr-automation-hub/models/db"
)

// журнал действий: сбой записи не должен ронять бизнес-операцию,
// поэтому ошибки здесь только логируются
type Provider interface {
	TicketAction(actorID, action, ticketID string, before, after dbmodels.AuditState)
	UserAction(actorID, action, userID string, before, after dbmodels.AuditState)
	ApprovalAction(actorID, action, approvalID string, after dbmodels.AuditState)
	ListByTarget(targetType, targetID string, limit int) ([]dbmodels.AuditLog, error)
}

var Instance Provider

func NewHandler(store auditstore.Provider) {
	Instance = &impl{
		store: store,
	}
}

type impl struct {
	store auditstore.Provider
}

func (i impl) TicketAction(actorID, action, ticketID string, before, after dbmodels.AuditState) {
	i.save(actorID, action, "ticket", ticketID, before, after)
}

func (i impl) UserAction(actorID, action, userID string, before, after dbmodels.AuditState) {
	i.save(actorID, action, "user", userID, before, after)
}

func (i impl) ApprovalAction(actorID, action, approvalID string, after dbmodels.AuditState) {
	i.save(actorID, action, "approval", approvalID, nil, after)
}

func (i impl) ListByTarget(targetType, targetID string, limit int) ([]dbmodels.AuditLog, error) {
	return i.store.ListByTarget(targetType, targetID, limit)
}

func (i impl) save(actorID, action, targetType, targetID string, before, after dbmodels.AuditState) {
	err := i.store.Save(dbmodels.AuditLog{
		ActorID:    actorID,
		Action:     action,
		TargetType: targetType,
		TargetID:   targetID,
		Before:     before,
		After:      after,
	})
	if err != nil {
		log.WithError(err).
			WithField("action", action).
			WithField("target_id", targetID).
			Error("ошибка записи в журнал аудита")
	}
}
