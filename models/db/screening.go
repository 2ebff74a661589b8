package dbmodels

import (
	"database/sql/driver"
	"encoding/json"

	"hr-automation-hub/models"

	"github.com/lib/pq"
)

type Screening struct {
	BaseModel
	CandidateID string                 `gorm:"type:varchar(36);index" json:"candidate_id"`
	JobID       string                 `gorm:"type:varchar(36);index" json:"job_id"`
	Score       *int                   `json:"score"`
	Weights     ScreeningWeights       `gorm:"type:jsonb" json:"weights"`
	Highlights  pq.StringArray         `gorm:"type:text[]" json:"highlights"`
	Gaps        pq.StringArray         `gorm:"type:text[]" json:"gaps"`
	Rationale   string                 `json:"rationale"`
	Model       string                 `gorm:"type:varchar(100)" json:"model"`
	Tokens      int                    `json:"tokens"`
	Status      models.ScreeningStatus `gorm:"type:varchar(20);index;default:queued" json:"status"`
	Error       string                 `json:"error,omitempty"`
}

type ScreeningWeights struct {
	Projects   float64 `json:"projects"`
	Skills     float64 `json:"skills"`
	Experience float64 `json:"experience"`
}

func DefaultScreeningWeights() ScreeningWeights {
	return ScreeningWeights{Projects: 0.4, Skills: 0.3, Experience: 0.3}
}

func (w ScreeningWeights) Value() (driver.Value, error) {
	valueString, err := json.Marshal(w)
	return string(valueString), err
}

func (w *ScreeningWeights) Scan(value any) error {
	if err := json.Unmarshal(value.([]byte), &w); err != nil {
		return err
	}
	return nil
}
