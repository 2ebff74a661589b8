package tickethandler

import (
	"context"
	"time"

	log "github.com/sirupsen/logrus"

	"hr-automation-hub/db"
	ticketstore "hr-automation-hub/lib/ticket/store"
	userstore "hr-automation-hub/lib/users/store"
	"hr-automation-hub/lib/utils/lock"
	"hr-automation-hub/models"
	ticketapimodels "hr-automation-hub/models/api/ticket"
	"hr-automation-hub/models/apperrors"
	dbmodels "hr-automation-hub/models/db"
)

type Provider interface {
	Create(actorID, actorName string, data ticketapimodels.CreateTicketRequest) (*dbmodels.Ticket, error)
	GetByID(id string) (*dbmodels.Ticket, error)
	List(userID string, filter ticketapimodels.TicketFilter) ([]dbmodels.Ticket, error)
	UpdateStatus(actorID, actorName, ticketID string, data ticketapimodels.UpdateStatusRequest) (*dbmodels.Ticket, error)
	Assign(actorID, actorName, ticketID, userID string) (*dbmodels.Ticket, error)
	Route(actorID, actorName, ticketID, notes string) (*dbmodels.Ticket, error)
	AutoRoute(actorID, actorName, ticketID string) (*dbmodels.Ticket, error)
	Escalate(actorID, actorName, ticketID, note string) (*dbmodels.Ticket, error)
	AddComment(actorID, actorName, ticketID, text string) (*dbmodels.Ticket, error)
	Summary(department models.Department) (ticketapimodels.Summary, error)
	TeamLoad(department models.Department) ([]ticketapimodels.MemberLoad, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store:     ticketstore.NewInstance(db.DB),
		userStore: userstore.NewInstance(db.DB),
	}
}

func NewHandlerWithStores(store ticketstore.Provider, userStore userstore.Provider) Provider {
	return impl{
		store:     store,
		userStore: userStore,
	}
}

type impl struct {
	store     ticketstore.Provider
	userStore userstore.Provider
}

func (i impl) Create(actorID, actorName string, data ticketapimodels.CreateTicketRequest) (*dbmodels.Ticket, error) {
	priority := data.Priority
	if priority == "" {
		priority = models.TicketPriorityMedium
	}
	category := data.Category
	if category == "" {
		category = "other"
	}
	rec := dbmodels.Ticket{
		CreatedByID: actorID,
		Department:  data.Department,
		Type:        data.Type,
		Category:    category,
		Priority:    priority,
		Title:       data.Title,
		Description: data.Description,
		Status:      models.TicketStatusCreated,
		RouteStatus: models.RouteStatusUnrouted,
		History:     dbmodels.TicketHistory{},
	}
	id, err := i.store.Create(rec)
	if err != nil {
		return nil, err
	}
	created, err := i.store.GetByID(id)
	if err != nil {
		return nil, err
	}
	auditTicket(actorID, "ticket_create", id, nil, dbmodels.AuditState{
		"department": data.Department,
		"title":      data.Title,
		"status":     models.TicketStatusCreated,
	})
	i.dispatch([]effect{{
		event: "ticket_created",
		payload: map[string]any{
			"ticketId":   id,
			"department": string(data.Department),
			"title":      data.Title,
			"by":         actorName,
			"to":         i.ticketRecipients(*created),
		},
	}})
	return created, nil
}

func (i impl) GetByID(id string) (*dbmodels.Ticket, error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, apperrors.NewNotFoundError("Ticket not found")
	}
	return rec, nil
}

func (i impl) List(userID string, filter ticketapimodels.TicketFilter) ([]dbmodels.Ticket, error) {
	return i.store.List(userID, filter)
}

func (i impl) UpdateStatus(actorID, actorName, ticketID string, data ticketapimodels.UpdateStatusRequest) (*dbmodels.Ticket, error) {
	rec, err := i.GetByID(ticketID)
	if err != nil {
		return nil, err
	}
	if err := CheckTransition(rec.Status, data.Status); err != nil {
		return nil, err
	}
	before := rec.Status
	rec.Status = data.Status
	rec.History = append(rec.History, dbmodels.TicketHistoryEntry{
		At:      time.Now(),
		By:      actorName,
		Status:  data.Status,
		Comment: data.Comment,
	})
	if err := i.store.SaveWithVersion(*rec, rec.Version); err != nil {
		return nil, err
	}
	auditTicket(actorID, "ticket_status", ticketID,
		dbmodels.AuditState{"status": before},
		dbmodels.AuditState{"status": data.Status})
	i.dispatch([]effect{{
		event: "ticket_status_changed",
		payload: map[string]any{
			"ticketId": ticketID,
			"status":   string(data.Status),
			"by":       actorName,
			"to":       i.ticketRecipients(*rec),
		},
	}})
	return i.store.GetByID(ticketID)
}

// Assign ставит исполнителя. Принадлежность исполнителя отделу тикета
// намеренно не проверяется: практикуется кросс-отдельное назначение.
func (i impl) Assign(actorID, actorName, ticketID, userID string) (*dbmodels.Ticket, error) {
	rec, err := i.GetByID(ticketID)
	if err != nil {
		return nil, err
	}
	assignee, err := i.userStore.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if assignee == nil {
		return nil, apperrors.NewNotFoundError("User not found")
	}
	before := rec.AssignedToID
	rec.AssignedToID = &assignee.ID
	rec.History = append(rec.History, dbmodels.TicketHistoryEntry{
		At:         time.Now(),
		By:         actorName,
		AssignedTo: assignee.Username,
	})
	if err := i.store.SaveWithVersion(*rec, rec.Version); err != nil {
		return nil, err
	}
	auditTicket(actorID, "ticket_assign", ticketID,
		dbmodels.AuditState{"assigned_to": before},
		dbmodels.AuditState{"assigned_to": assignee.ID})
	return i.store.GetByID(ticketID)
}

// Route помечает тикет смаршрутизированным; исполнитель может быть ещё не назначен
func (i impl) Route(actorID, actorName, ticketID, notes string) (*dbmodels.Ticket, error) {
	rec, err := i.GetByID(ticketID)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	rec.RouteStatus = models.RouteStatusRouted
	rec.RoutedByID = &actorID
	rec.RoutedAt = &now
	rec.RoutingNotes = notes
	rec.History = append(rec.History, dbmodels.TicketHistoryEntry{
		At:          now,
		By:          actorName,
		RouteStatus: models.RouteStatusRouted,
		Comment:     notes,
	})
	if err := i.store.SaveWithVersion(*rec, rec.Version); err != nil {
		return nil, err
	}
	auditTicket(actorID, "ticket_route", ticketID, nil,
		dbmodels.AuditState{"route_status": models.RouteStatusRouted})
	return i.store.GetByID(ticketID)
}

// AutoRoute назначает тикет наименее загруженному активному сотруднику IT.
// При равной загрузке выбирается пользователь с меньшим id, результат
// детерминирован. Замок по id тикета защищает от параллельного автороутинга.
func (i impl) AutoRoute(actorID, actorName, ticketID string) (*dbmodels.Ticket, error) {
	var result *dbmodels.Ticket
	locked, err := lock.WithDelay(context.Background(), "autoroute-"+ticketID, 5*time.Second, func() error {
		rec, err := i.autoRoute(actorID, actorName, ticketID)
		if err != nil {
			return err
		}
		result = rec
		return nil
	})
	if err != nil {
		return nil, err
	}
	if !locked {
		return nil, apperrors.NewConflictError("Ticket is being routed by another request")
	}
	return result, nil
}

func (i impl) autoRoute(actorID, actorName, ticketID string) (*dbmodels.Ticket, error) {
	rec, err := i.GetByID(ticketID)
	if err != nil {
		return nil, err
	}
	if rec.Department != models.DepartmentIT {
		return nil, apperrors.NewInvalidOperationError("Autoroute is only available for IT tickets")
	}
	members, err := i.userStore.ListActiveByDepartment(models.DepartmentIT)
	if err != nil {
		return nil, err
	}
	if len(members) == 0 {
		return nil, apperrors.NewNoCapacityError("No active IT users to route to")
	}
	ids := make([]string, 0, len(members))
	for _, member := range members {
		ids = append(ids, member.ID)
	}
	loads, err := i.store.OpenCountByUsers(ids)
	if err != nil {
		return nil, err
	}
	// members отсортированы по id, поэтому при равной загрузке
	// побеждает первый встреченный
	best := members[0]
	bestLoad := loads[best.ID]
	for _, member := range members[1:] {
		if loads[member.ID] < bestLoad {
			best = member
			bestLoad = loads[member.ID]
		}
	}

	now := time.Now()
	rec.AssignedToID = &best.ID
	rec.RouteStatus = models.RouteStatusRouted
	rec.RoutedByID = &actorID
	rec.RoutedAt = &now
	rec.History = append(rec.History, dbmodels.TicketHistoryEntry{
		At:          now,
		By:          actorName,
		AssignedTo:  best.Username,
		RouteStatus: models.RouteStatusRouted,
		Auto:        true,
	})
	if err := i.store.SaveWithVersion(*rec, rec.Version); err != nil {
		return nil, err
	}
	log.
		WithField("ticket_id", ticketID).
		WithField("assigned_to", best.ID).
		WithField("open_load", bestLoad).
		Info("тикет автоматически смаршрутизирован")
	auditTicket(actorID, "ticket_autoroute", ticketID, nil,
		dbmodels.AuditState{"assigned_to": best.ID, "route_status": models.RouteStatusRouted})
	return i.store.GetByID(ticketID)
}

// Escalate форсирует приоритет urgent независимо от статуса; в работу
// переводятся только тикеты в Created или PendingApproval
func (i impl) Escalate(actorID, actorName, ticketID, note string) (*dbmodels.Ticket, error) {
	rec, err := i.GetByID(ticketID)
	if err != nil {
		return nil, err
	}
	before := dbmodels.AuditState{"priority": rec.Priority, "status": rec.Status}
	rec.Priority = models.TicketPriorityUrgent
	if rec.Status == models.TicketStatusCreated || rec.Status == models.TicketStatusPendingApproval {
		rec.Status = models.TicketStatusInProgress
	}
	rec.History = append(rec.History, dbmodels.TicketHistoryEntry{
		At:        time.Now(),
		By:        actorName,
		Status:    rec.Status,
		Comment:   note,
		Escalated: true,
	})
	if err := i.store.SaveWithVersion(*rec, rec.Version); err != nil {
		return nil, err
	}
	auditTicket(actorID, "ticket_escalate", ticketID, before,
		dbmodels.AuditState{"priority": rec.Priority, "status": rec.Status})
	i.dispatch([]effect{{
		event: "ticket_escalated",
		payload: map[string]any{
			"ticketId": ticketID,
			"status":   string(rec.Status),
			"by":       actorName,
			"to":       i.ticketRecipients(*rec),
		},
	}})
	return i.store.GetByID(ticketID)
}

func (i impl) AddComment(actorID, actorName, ticketID, text string) (*dbmodels.Ticket, error) {
	rec, err := i.GetByID(ticketID)
	if err != nil {
		return nil, err
	}
	rec.History = append(rec.History, dbmodels.TicketHistoryEntry{
		At:      time.Now(),
		By:      actorName,
		Comment: text,
	})
	if err := i.store.SaveWithVersion(*rec, rec.Version); err != nil {
		return nil, err
	}
	auditTicket(actorID, "ticket_comment", ticketID, nil,
		dbmodels.AuditState{"comment": text})
	return i.store.GetByID(ticketID)
}

func (i impl) Summary(department models.Department) (ticketapimodels.Summary, error) {
	if !department.IsTicketDepartment() {
		return ticketapimodels.Summary{}, apperrors.NewValidationError("Invalid department")
	}
	return i.store.Summary(department)
}

func (i impl) TeamLoad(department models.Department) ([]ticketapimodels.MemberLoad, error) {
	if !department.IsTicketDepartment() {
		return nil, apperrors.NewValidationError("Invalid department")
	}
	members, err := i.userStore.ListActiveByDepartment(department)
	if err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(members))
	for _, member := range members {
		ids = append(ids, member.ID)
	}
	loads, err := i.store.OpenCountByUsers(ids)
	if err != nil {
		return nil, err
	}
	result := make([]ticketapimodels.MemberLoad, 0, len(members))
	for _, member := range members {
		result = append(result, ticketapimodels.MemberLoad{
			UserID:    member.ID,
			Username:  member.Username,
			OpenCount: loads[member.ID],
		})
	}
	return result, nil
}
