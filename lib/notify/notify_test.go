package notify

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type sentMail struct {
	from    string
	to      string
	subject string
	body    string
}

type fakeMailClient struct {
	configured bool
	sent       []sentMail
}

func (f *fakeMailClient) IsConfigured() bool { return f.configured }

func (f *fakeMailClient) SendEMail(from, to, message, subject string) error {
	f.sent = append(f.sent, sentMail{from: from, to: to, subject: subject, body: message})
	return nil
}

func TestNotify(t *testing.T) {
	t.Run(`sends to every recipient from payload`, func(t *testing.T) {
		client := &fakeMailClient{configured: true}
		handler := impl{mailClient: client, from: "noreply@hub.local"}

		handler.Notify(EventTicketCreated, map[string]any{
			"ticketId":   "t-1",
			"department": "IT",
			"to":         []string{"user@hub.local", "it@hub.local"},
		})
		require.Len(t, client.sent, 2)
		require.Equal(t, "user@hub.local", client.sent[0].to)
		require.Equal(t, "it@hub.local", client.sent[1].to)
		require.Contains(t, client.sent[0].subject, "t-1")
		require.Contains(t, client.sent[0].body, EventTicketCreated)
	})

	t.Run(`falls back to sender address without recipients`, func(t *testing.T) {
		client := &fakeMailClient{configured: true}
		handler := impl{mailClient: client, from: "noreply@hub.local"}

		handler.Notify(EventTicketEscalated, map[string]any{"ticketId": "t-2"})
		require.Len(t, client.sent, 1)
		require.Equal(t, "noreply@hub.local", client.sent[0].to)
	})

	t.Run(`silent when mail client is not configured`, func(t *testing.T) {
		client := &fakeMailClient{}
		handler := impl{mailClient: client, from: "noreply@hub.local"}

		handler.Notify(EventTicketStatusChanged, map[string]any{"ticketId": "t-3", "to": "user@hub.local"})
		require.Len(t, client.sent, 0)
	})

	t.Run(`subject reflects event type`, func(t *testing.T) {
		payload := map[string]any{"ticketId": "t-4", "status": "InProgress"}
		require.Equal(t, "Ticket #t-4 status: InProgress", formatSubject(EventTicketStatusChanged, payload))
		require.Equal(t, "Ticket #t-4 escalated", formatSubject(EventTicketEscalated, payload))
	})
}
