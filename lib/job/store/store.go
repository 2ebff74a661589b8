package jobstore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"

	dbmodels "hr-automation-hub/models/db"
)

type Provider interface {
	Create(rec dbmodels.Job) (id string, err error)
	Update(id string, updMap map[string]interface{}) error
	GetByID(id string) (rec *dbmodels.Job, err error)
	List() (list []dbmodels.Job, err error)
	ListOpen() (list []dbmodels.Job, err error)
	CountOpen() (int64, error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Job) (string, error) {
	err := i.db.
		Create(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) Update(id string, updMap map[string]interface{}) error {
	if len(updMap) == 0 {
		return nil
	}
	tx := i.db.
		Model(&dbmodels.Job{}).
		Where("id = ?", id).
		Updates(updMap)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return errors.New("запись не найдена")
	}
	return nil
}

func (i impl) GetByID(id string) (*dbmodels.Job, error) {
	rec := dbmodels.Job{}
	err := i.db.
		Model(&dbmodels.Job{}).
		Where("id = ?", id).
		First(&rec).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}

func (i impl) List() ([]dbmodels.Job, error) {
	list := []dbmodels.Job{}
	err := i.db.
		Model(&dbmodels.Job{}).
		Order("created_at desc").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) CountOpen() (int64, error) {
	var count int64
	err := i.db.
		Model(&dbmodels.Job{}).
		Where("status = ?", dbmodels.JobStatusOpen).
		Count(&count).
		Error
	return count, err
}

func (i impl) ListOpen() ([]dbmodels.Job, error) {
	list := []dbmodels.Job{}
	err := i.db.
		Model(&dbmodels.Job{}).
		Where("status = ?", dbmodels.JobStatusOpen).
		Order("created_at desc").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}
