package dbmodels

import (
	"hr-automation-hub/models"
)

type Application struct {
	BaseModel
	CandidateID string                   `gorm:"type:varchar(36);index" json:"candidate_id"`
	Candidate   *Candidate               `gorm:"foreignKey:CandidateID" json:"-"`
	JobID       string                   `gorm:"type:varchar(36);index" json:"job_id"`
	Job         *Job                     `gorm:"foreignKey:JobID" json:"-"`
	Status      models.ApplicationStatus `gorm:"type:varchar(20);default:applied" json:"status"`
	ResumeID    *string                  `gorm:"type:varchar(36)" json:"resume_id"`
	Notes       string                   `json:"notes"`
	CreatedByID string                   `gorm:"type:varchar(36)" json:"created_by"`
}
