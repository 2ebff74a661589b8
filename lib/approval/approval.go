package approvalhandler

import (
	"hr-automation-hub/db"
	approvalstore "hr-automation-hub/lib/approval/store"
	"hr-automation-hub/lib/audit"
	"hr-automation-hub/lib/notify"
	tickethandler "hr-automation-hub/lib/ticket"
	"hr-automation-hub/models"
	ticketapimodels "hr-automation-hub/models/api/ticket"
	"hr-automation-hub/models/apperrors"
	dbmodels "hr-automation-hub/models/db"
)

type Provider interface {
	// Request переводит тикет в PendingApproval и заводит запись согласования
	Request(actorID, actorName, ticketID string) (*dbmodels.Approval, error)
	Decide(actorID, actorName, ticketID string, status models.ApprovalStatus, comments string) (*dbmodels.Ticket, error)
	ListPending() ([]dbmodels.Approval, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store: approvalstore.NewInstance(db.DB),
	}
}

type impl struct {
	store approvalstore.Provider
}

func (i impl) Request(actorID, actorName, ticketID string) (*dbmodels.Approval, error) {
	existing, err := i.store.GetPendingByTicket(ticketID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperrors.NewConflictError("Ticket already has a pending approval")
	}
	_, err = tickethandler.Instance.UpdateStatus(actorID, actorName, ticketID, ticketapimodels.UpdateStatusRequest{
		Status: models.TicketStatusPendingApproval,
	})
	if err != nil {
		return nil, err
	}
	id, err := i.store.Create(dbmodels.Approval{
		TicketID: ticketID,
		Status:   models.ApprovalStatusPending,
	})
	if err != nil {
		return nil, err
	}
	return i.store.GetByID(id)
}

func (i impl) Decide(actorID, actorName, ticketID string, status models.ApprovalStatus, comments string) (*dbmodels.Ticket, error) {
	approval, err := i.store.GetPendingByTicket(ticketID)
	if err != nil {
		return nil, err
	}
	if approval == nil {
		return nil, apperrors.NewNotFoundError("Pending approval not found")
	}
	ticketStatus := models.TicketStatusApproved
	if status == models.ApprovalStatusRejected {
		ticketStatus = models.TicketStatusRejected
	}
	ticket, err := tickethandler.Instance.UpdateStatus(actorID, actorName, ticketID, ticketapimodels.UpdateStatusRequest{
		Status:  ticketStatus,
		Comment: comments,
	})
	if err != nil {
		return nil, err
	}
	if err := i.store.SetDecision(approval.ID, status, actorID, comments); err != nil {
		return nil, err
	}
	if audit.Instance != nil {
		audit.Instance.ApprovalAction(actorID, "approval_decision", approval.ID, dbmodels.AuditState{
			"ticket_id": ticketID,
			"status":    status,
		})
	}
	if notify.Instance != nil {
		notify.Instance.Notify(notify.EventTicketApprovalDecision, map[string]any{
			"ticketId": ticketID,
			"decision": string(status),
			"by":       actorName,
		})
	}
	return ticket, nil
}

func (i impl) ListPending() ([]dbmodels.Approval, error) {
	return i.store.ListPending()
}
