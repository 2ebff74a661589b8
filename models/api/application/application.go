package applicationapimodels

import (
	"hr-automation-hub/models"
	"hr-automation-hub/models/apperrors"
)

type ApplyRequest struct {
	JobID string `json:"job_id"`
}

func (r ApplyRequest) Validate() error {
	if r.JobID == "" {
		return apperrors.NewValidationError("Job id is required")
	}
	return nil
}

type SetStatusRequest struct {
	Status models.ApplicationStatus `json:"status"`
}

func (r SetStatusRequest) Validate() error {
	switch r.Status {
	case models.ApplicationStatusApplied, models.ApplicationStatusScreening, models.ApplicationStatusInterview,
		models.ApplicationStatusOffered, models.ApplicationStatusRejected, models.ApplicationStatusHired:
		return nil
	}
	return apperrors.NewValidationError("Invalid status")
}
