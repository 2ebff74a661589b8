package auditstore

import (
	"gorm.io/gorm"

	dbmodels "hr-automation-hub/models/db"
)

type Provider interface {
	Save(rec dbmodels.AuditLog) error
	ListByTarget(targetType, targetID string, limit int) (list []dbmodels.AuditLog, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Save(rec dbmodels.AuditLog) error {
	return i.db.
		Create(&rec).
		Error
}

func (i impl) ListByTarget(targetType, targetID string, limit int) ([]dbmodels.AuditLog, error) {
	if limit <= 0 {
		limit = 100
	}
	list := []dbmodels.AuditLog{}
	err := i.db.
		Model(&dbmodels.AuditLog{}).
		Where("target_type = ?", targetType).
		Where("target_id = ?", targetID).
		Order("timestamp desc").
		Limit(limit).
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}
