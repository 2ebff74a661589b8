package notify

import (
	"encoding/json"
	"fmt"
	"strings"

	log "github.com/sirupsen/logrus"
	"hr-automation-hub/lib/smtp"
)

const (
	EventTicketCreated          = "ticket_created"
	EventTicketStatusChanged    = "ticket_status_changed"
	EventTicketEscalated        = "ticket_escalated"
	EventTicketApprovalDecision = "ticket_approval_decision"
)

// Provider рассылает уведомления по событиям fire-and-forget:
// ошибка отправки логируется и никогда не прерывает вызывающую операцию.
type Provider interface {
	Notify(event string, payload map[string]any)
}

var Instance Provider

func NewHandler(mailClient smtp.Provider, from string) {
	Instance = &impl{
		mailClient: mailClient,
		from:       from,
	}
}

type impl struct {
	mailClient smtp.Provider
	from       string
}

func (i impl) Notify(event string, payload map[string]any) {
	logger := log.WithField("event", event).WithField("payload", payload)
	logger.Info("notify")

	if i.mailClient == nil || !i.mailClient.IsConfigured() {
		return
	}

	to := i.recipients(payload)
	subject := formatSubject(event, payload)
	body := formatBody(event, payload)
	for _, recipient := range to {
		if err := i.mailClient.SendEMail(i.from, recipient, body, subject); err != nil {
			logger.WithError(err).Error("ошибка отправки уведомления")
		}
	}
}

func (i impl) recipients(payload map[string]any) []string {
	if raw, ok := payload["to"]; ok {
		switch list := raw.(type) {
		case []string:
			if len(list) > 0 {
				return list
			}
		case string:
			if list != "" {
				return []string{list}
			}
		}
	}
	return []string{i.from}
}

func formatSubject(event string, payload map[string]any) string {
	switch event {
	case EventTicketCreated:
		return fmt.Sprintf("New Ticket #%v in %v", payload["ticketId"], payload["department"])
	case EventTicketStatusChanged:
		return fmt.Sprintf("Ticket #%v status: %v", payload["ticketId"], payload["status"])
	case EventTicketEscalated:
		return fmt.Sprintf("Ticket #%v escalated", payload["ticketId"])
	case EventTicketApprovalDecision:
		return fmt.Sprintf("Ticket #%v %v", payload["ticketId"], payload["status"])
	default:
		return fmt.Sprintf("Notification: %s", event)
	}
}

func formatBody(event string, payload map[string]any) string {
	details, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		details = []byte("{}")
	}
	return strings.Join([]string{
		fmt.Sprintf("Event: %s", event),
		fmt.Sprintf("Details: %s", string(details)),
		"",
		"— Automation Hub",
	}, "\n")
}
