package dbmodels

type ProjectStatus string

const (
	ProjectStatusInProgress ProjectStatus = "In Progress"
	ProjectStatusBlocked    ProjectStatus = "Blocked"
	ProjectStatusCompleted  ProjectStatus = "Completed"
)

type Project struct {
	BaseModel
	OwnerID     string        `gorm:"type:varchar(36);index" json:"owner_id"`
	Name        string        `gorm:"type:varchar(255)" json:"name"`
	Status      ProjectStatus `gorm:"type:varchar(30);default:'In Progress'" json:"status"`
	Description string        `json:"description"`
}
