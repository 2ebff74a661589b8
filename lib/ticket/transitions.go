package tickethandler

import (
	"hr-automation-hub/models"
	"hr-automation-hub/models/apperrors"
)

// Таблица переходов жизненного цикла тикета. Заявка либо идёт через ветку
// согласования (PendingApproval → Approved/Rejected), либо сразу в работу;
// тривиальную заявку можно решить или закрыть без промежуточных статусов.
// Closed — терминальный статус, из Resolved возможно переоткрытие.
var allowedTransitions = map[models.TicketStatus][]models.TicketStatus{
	models.TicketStatusCreated: {
		models.TicketStatusPendingApproval,
		models.TicketStatusInProgress,
		models.TicketStatusResolved,
		models.TicketStatusClosed,
	},
	models.TicketStatusPendingApproval: {
		models.TicketStatusApproved,
		models.TicketStatusRejected,
	},
	models.TicketStatusApproved: {
		models.TicketStatusInProgress,
		models.TicketStatusClosed,
	},
	models.TicketStatusRejected: {
		models.TicketStatusClosed,
	},
	models.TicketStatusInProgress: {
		models.TicketStatusWaitingOnUser,
		models.TicketStatusResolved,
		models.TicketStatusClosed,
	},
	models.TicketStatusWaitingOnUser: {
		models.TicketStatusInProgress,
		models.TicketStatusResolved,
	},
	models.TicketStatusResolved: {
		models.TicketStatusInProgress,
		models.TicketStatusClosed,
	},
	models.TicketStatusClosed: {},
}

func CanTransition(from, to models.TicketStatus) bool {
	for _, next := range allowedTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// CheckTransition возвращает ConflictError на недопустимый переход
func CheckTransition(from, to models.TicketStatus) error {
	if !CanTransition(from, to) {
		return apperrors.NewConflictError("Transition " + string(from) + " -> " + string(to) + " is not allowed")
	}
	return nil
}
