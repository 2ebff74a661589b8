package dbmodels

import (
	"hr-automation-hub/models"
)

type Approval struct {
	BaseModel
	TicketID   string                `gorm:"type:varchar(36);index" json:"ticket_id"`
	Ticket     *Ticket               `gorm:"foreignKey:TicketID" json:"-"`
	ApproverID string                `gorm:"type:varchar(36)" json:"approver_id"`
	Status     models.ApprovalStatus `gorm:"type:varchar(20);default:Pending" json:"status"`
	Comments   string                `json:"comments"`
}
