package tickethandler

import (
	"fmt"

	"hr-automation-hub/config"
	"hr-automation-hub/lib/audit"
	"hr-automation-hub/lib/notify"
	connectionhub "hr-automation-hub/lib/ws/hub"
	dbmodels "hr-automation-hub/models/db"
	wsmodels "hr-automation-hub/models/ws"
)

// effect — отложенный побочный эффект операции над тикетом.
// Операции только собирают эффекты, отправка выполняется одним
// диспатчем после успешного сохранения тикета.
type effect struct {
	event   string
	payload map[string]any
}

func (i impl) dispatch(effects []effect) {
	for _, e := range effects {
		if notify.Instance != nil {
			notify.Instance.Notify(e.event, e.payload)
		}
		if connectionhub.Instance != nil {
			ticketID, _ := e.payload["ticketId"].(string)
			connectionhub.Instance.Broadcast(wsmodels.ServerMessage{
				Event:    e.event,
				TicketID: ticketID,
				Payload:  e.payload,
			})
		}
	}
}

func auditTicket(actorID, action, ticketID string, before, after dbmodels.AuditState) {
	if audit.Instance == nil {
		return
	}
	audit.Instance.TicketAction(actorID, action, ticketID, before, after)
}

// deptAlias — групповой адрес отдела, например it@corp.example
func deptAlias(department string) string {
	if config.Conf == nil {
		return ""
	}
	domain := config.Conf.Smtp.DeptAliasDomain
	if domain == "" {
		return ""
	}
	return fmt.Sprintf("%s@%s", department, domain)
}

func (i impl) ticketRecipients(rec dbmodels.Ticket) []string {
	to := []string{}
	if creator, err := i.userStore.GetByID(rec.CreatedByID); err == nil && creator != nil && creator.Email != "" {
		to = append(to, creator.Email)
	}
	if alias := deptAlias(string(rec.Department)); alias != "" {
		to = append(to, alias)
	}
	return to
}
