package dbmodels

import (
	"database/sql/driver"
	"encoding/json"
	"time"
)

type CandidateStage string

const (
	StageApplied     CandidateStage = "Applied"
	StageScreened    CandidateStage = "Screened"
	StageInterviewed CandidateStage = "Interviewed"
	StageShortlisted CandidateStage = "Shortlisted"
	StageOffer       CandidateStage = "Offer"
	StageHired       CandidateStage = "Hired"
	StageRejected    CandidateStage = "Rejected"
)

type Candidate struct {
	BaseModel
	UserID *string         `gorm:"type:varchar(36);index" json:"user_id"`
	Name   string          `gorm:"type:varchar(255)" json:"name"`
	Email  string          `gorm:"type:varchar(255);index" json:"email"`
	Phone  string          `gorm:"type:varchar(30)" json:"phone"`
	Stages CandidateStages `gorm:"type:jsonb;default:'[]'" json:"stages"`
	Notes  string          `json:"notes"`
}

type CandidateStages []StageEntry

type StageEntry struct {
	Name CandidateStage `json:"name"`
	Note string         `json:"note,omitempty"`
	At   time.Time      `json:"at"`
}

func (s CandidateStages) Value() (driver.Value, error) {
	valueString, err := json.Marshal(s)
	return string(valueString), err
}

func (s *CandidateStages) Scan(value any) error {
	if err := json.Unmarshal(value.([]byte), &s); err != nil {
		return err
	}
	return nil
}

// текущий этап воронки — первый в списке
func (c Candidate) CurrentStage() CandidateStage {
	if len(c.Stages) == 0 {
		return StageApplied
	}
	return c.Stages[0].Name
}
