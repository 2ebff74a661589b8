package wsmodels

// ServerMessage — серверное событие по тикету, уходит всем подключённым
// клиентам дашбордов
type ServerMessage struct {
	Event    string         `json:"event"`
	Time     string         `json:"time"`
	TicketID string         `json:"ticket_id,omitempty"`
	Payload  map[string]any `json:"payload,omitempty"`
}
