package dbmodels

import (
	"time"

	"hr-automation-hub/models"
)

type Offer struct {
	BaseModel
	CandidateID string             `gorm:"type:varchar(36);index" json:"candidate_id"`
	Candidate   *Candidate         `gorm:"foreignKey:CandidateID" json:"-"`
	JobID       string             `gorm:"type:varchar(36);index" json:"job_id"`
	Job         *Job               `gorm:"foreignKey:JobID" json:"-"`
	Status      models.OfferStatus `gorm:"type:varchar(30);default:draft" json:"status"`
	Salary      float64            `json:"salary"`
	Currency    string             `gorm:"type:varchar(10);default:USD" json:"currency"`
	StartDate   *time.Time         `json:"start_date"`
	Notes       string             `json:"notes"`
	CreatedByID string             `gorm:"type:varchar(36)" json:"created_by"`
}
