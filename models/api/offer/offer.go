package offerapimodels

import (
	"time"

	"hr-automation-hub/models"
	"hr-automation-hub/models/apperrors"
)

type CreateOfferRequest struct {
	CandidateID string     `json:"candidateId"`
	JobID       string     `json:"jobId"`
	Salary      float64    `json:"salary"`
	Currency    string     `json:"currency"`
	StartDate   *time.Time `json:"startDate"`
	Notes       string     `json:"notes"`
}

func (r CreateOfferRequest) Validate() error {
	if r.CandidateID == "" || r.JobID == "" {
		return apperrors.NewValidationError("candidateId and jobId required")
	}
	return nil
}

type UpdateOfferRequest struct {
	Status    models.OfferStatus `json:"status"`
	Salary    *float64           `json:"salary"`
	StartDate *time.Time         `json:"startDate"`
	Notes     *string            `json:"notes"`
}

func (r UpdateOfferRequest) Validate() error {
	if r.Status != "" && !r.Status.IsValid() {
		return apperrors.NewValidationError("Invalid status")
	}
	return nil
}

type SendOfferRequest struct {
	Email string `json:"email"`
}
