package dbmodels

import (
	"hr-automation-hub/models"

	"github.com/lib/pq"
)

type JobStatus string

const (
	JobStatusOpen   JobStatus = "open"
	JobStatusClosed JobStatus = "closed"
)

type Job struct {
	BaseModel
	Title        string            `gorm:"type:varchar(255)" json:"title"`
	Department   models.Department `gorm:"type:varchar(50);index" json:"department"`
	JDText       string            `gorm:"column:jd_text" json:"jd_text"`
	Requirements pq.StringArray    `gorm:"type:text[]" json:"requirements"`
	Status       JobStatus         `gorm:"type:varchar(20);default:open" json:"status"`
}
