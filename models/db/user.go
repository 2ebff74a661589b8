package dbmodels

import (
	"hr-automation-hub/models"
)

type User struct {
	BaseModel
	Username     string            `gorm:"type:varchar(150);uniqueIndex" json:"username"`
	Email        string            `gorm:"type:varchar(255)" json:"email"`
	PasswordHash string            `gorm:"type:varchar(128)" json:"-"`
	Role         models.UserRole   `gorm:"type:varchar(50)" json:"role"`
	Department   models.Department `gorm:"type:varchar(50);index" json:"department"`
	Status       models.UserStatus `gorm:"type:varchar(20);default:active" json:"status"`
}

func (u User) IsActive() bool {
	return u.Status == models.UserStatusActive
}
