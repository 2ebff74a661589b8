package ticketapimodels

import (
	"strings"

	"hr-automation-hub/models"
	"hr-automation-hub/models/apperrors"
	apimodels "hr-automation-hub/models/api"
)

type CreateTicketRequest struct {
	Department  models.Department     `json:"department"`
	Type        string                `json:"type"`
	Title       string                `json:"title"`
	Description string                `json:"description"`
	Category    string                `json:"category"`
	Priority    models.TicketPriority `json:"priority"`
}

func (r CreateTicketRequest) Validate() error {
	if r.Department == "" || strings.TrimSpace(r.Type) == "" || strings.TrimSpace(r.Title) == "" {
		return apperrors.NewValidationError("Missing fields")
	}
	if !r.Department.IsTicketDepartment() {
		return apperrors.NewValidationError("Invalid department")
	}
	if r.Priority != "" && !r.Priority.IsValid() {
		return apperrors.NewValidationError("Invalid priority")
	}
	return nil
}

type UpdateStatusRequest struct {
	Status  models.TicketStatus `json:"status"`
	Comment string              `json:"comment"`
}

func (r UpdateStatusRequest) Validate() error {
	if r.Status == "" {
		return apperrors.NewValidationError("Missing status")
	}
	if !r.Status.IsValid() {
		return apperrors.NewValidationError("Invalid status")
	}
	return nil
}

type AssignRequest struct {
	UserID string `json:"userId"`
}

func (r AssignRequest) Validate() error {
	if r.UserID == "" {
		return apperrors.NewValidationError("Invalid userId")
	}
	return nil
}

type RouteRequest struct {
	Notes string `json:"notes"`
}

type EscalateRequest struct {
	Note string `json:"note"`
}

type CommentRequest struct {
	Text string `json:"text"`
}

func (r CommentRequest) Validate() error {
	if strings.TrimSpace(r.Text) == "" {
		return apperrors.NewValidationError("Comment text required")
	}
	return nil
}

type TicketFilter struct {
	apimodels.Pagination
	Department models.Department   `query:"dept"`
	Status     models.TicketStatus `query:"status"`
	Mine       bool                `query:"mine"`
}

// Summary — счётчики по отделу. pending и routed пересекаются:
// смаршрутизированный тикет в статусе Created учитывается в обоих.
type Summary struct {
	Pending  int64 `json:"pending"`
	Routed   int64 `json:"routed"`
	Working  int64 `json:"working"`
	Resolved int64 `json:"resolved"`
}

type MemberLoad struct {
	UserID    string `json:"user_id"`
	Username  string `json:"username"`
	OpenCount int64  `json:"open_count"`
}
