package approvalapimodels

import (
	"hr-automation-hub/models"
	"hr-automation-hub/models/apperrors"
)

type DecisionRequest struct {
	Status   models.ApprovalStatus `json:"status"` // Approved | Rejected
	Comments string                `json:"comments"`
}

func (r DecisionRequest) Validate() error {
	if r.Status != models.ApprovalStatusApproved && r.Status != models.ApprovalStatusRejected {
		return apperrors.NewValidationError("Invalid status")
	}
	return nil
}
