package dbmodels

import (
	"database/sql/driver"
	"encoding/json"
	"time"

	"hr-automation-hub/models"
)

type Ticket struct {
	BaseModel
	CreatedByID  string                `gorm:"type:varchar(36);index" json:"created_by"`
	CreatedBy    *User                 `gorm:"foreignKey:CreatedByID" json:"-"`
	Department   models.Department     `gorm:"type:varchar(50);index" json:"department"`
	Type         string                `gorm:"type:varchar(100)" json:"type"`
	Category     string                `gorm:"type:varchar(100);default:other" json:"category"`
	Priority     models.TicketPriority `gorm:"type:varchar(20);default:medium" json:"priority"`
	Title        string                `gorm:"type:varchar(255)" json:"title"`
	Description  string                `json:"description"`
	Status       models.TicketStatus   `gorm:"type:varchar(30);index;default:Created" json:"status"`
	AssignedToID *string               `gorm:"type:varchar(36);index" json:"assigned_to"`
	AssignedTo   *User                 `gorm:"foreignKey:AssignedToID" json:"-"`
	RouteStatus  models.RouteStatus    `gorm:"type:varchar(20);default:unrouted" json:"route_status"`
	RoutedByID   *string               `gorm:"type:varchar(36)" json:"routed_by"`
	RoutedAt     *time.Time            `json:"routed_at"`
	RoutingNotes string                `json:"routing_notes"`
	History      TicketHistory         `gorm:"type:jsonb;default:'[]'" json:"history"`
	// счётчик версий для оптимистичной блокировки, инкремент на каждую запись
	Version int64 `gorm:"default:0" json:"version"`
}

// TicketHistory — встроенный append-only журнал тикета, по одной записи
// на каждую мутацию. Никогда не переписывается, только растёт.
type TicketHistory []TicketHistoryEntry

type TicketHistoryEntry struct {
	At          time.Time            `json:"at"`
	By          string               `json:"by"`
	Status      models.TicketStatus  `json:"status,omitempty"`
	Comment     string               `json:"comment,omitempty"`
	AssignedTo  string               `json:"assigned_to,omitempty"`
	RouteStatus models.RouteStatus   `json:"route_status,omitempty"`
	Approval    models.ApprovalStatus `json:"approval,omitempty"`
	Escalated   bool                 `json:"escalated,omitempty"`
	Auto        bool                 `json:"auto,omitempty"`
}

func (h TicketHistory) Value() (driver.Value, error) {
	valueString, err := json.Marshal(h)
	return string(valueString), err
}

func (h *TicketHistory) Scan(value any) error {
	if err := json.Unmarshal(value.([]byte), &h); err != nil {
		return err
	}
	return nil
}

func (t Ticket) IsOpen() bool {
	return t.Status.IsOpen()
}
