package projectapimodels

import (
	"hr-automation-hub/models/apperrors"
	dbmodels "hr-automation-hub/models/db"
)

type CreateProjectRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

func (r CreateProjectRequest) Validate() error {
	if r.Name == "" {
		return apperrors.NewValidationError("Name is required")
	}
	return nil
}

type SetStatusRequest struct {
	Status dbmodels.ProjectStatus `json:"status"`
}
