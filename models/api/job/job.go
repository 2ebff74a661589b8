package jobapimodels

import (
	"strings"

	"hr-automation-hub/models"
	"hr-automation-hub/models/apperrors"
)

type CreateJobRequest struct {
	Title        string            `json:"title"`
	Department   models.Department `json:"department"`
	JDText       string            `json:"jd_text"`
	Requirements []string          `json:"requirements"`
}

func (r CreateJobRequest) Validate() error {
	if strings.TrimSpace(r.Title) == "" || r.Department == "" || strings.TrimSpace(r.JDText) == "" {
		return apperrors.NewValidationError("Missing fields")
	}
	return nil
}
