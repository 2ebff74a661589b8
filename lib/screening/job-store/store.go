package screeningjobstore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"hr-automation-hub/models"
	dbmodels "hr-automation-hub/models/db"
)

type Provider interface {
	Create(rec dbmodels.ScreeningJob) (id string, err error)
	GetByID(id string) (rec *dbmodels.ScreeningJob, err error)
	// GetNextQueued — самая старая задача в очереди, для воркера
	GetNextQueued() (rec *dbmodels.ScreeningJob, err error)
	SetStatus(id string, status models.ScreeningJobStatus, errMsg string) error
	IncProcessed(id string) error
	SetTokenUsage(id string, usage dbmodels.TokenUsage) error
	List(limit int) (list []dbmodels.ScreeningJob, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.ScreeningJob) (string, error) {
	err := i.db.
		Create(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(id string) (*dbmodels.ScreeningJob, error) {
	rec := dbmodels.ScreeningJob{}
	err := i.db.
		Model(&dbmodels.ScreeningJob{}).
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

func (i impl) GetNextQueued() (*dbmodels.ScreeningJob, error) {
	rec := dbmodels.ScreeningJob{}
	err := i.db.
		Model(&dbmodels.ScreeningJob{}).
		Where("status = ?", models.ScreeningJobStatusQueued).
		Order("created_at").
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

func (i impl) SetStatus(id string, status models.ScreeningJobStatus, errMsg string) error {
	return i.db.
		Model(&dbmodels.ScreeningJob{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status": status,
			"error":  errMsg,
		}).
		Error
}

// атомарный инкремент, задачу могут двигать несколько горутин
func (i impl) IncProcessed(id string) error {
	return i.db.
		Model(&dbmodels.ScreeningJob{}).
		Where("id = ?", id).
		Update("processed", gorm.Expr("processed + 1")).
		Error
}

func (i impl) SetTokenUsage(id string, usage dbmodels.TokenUsage) error {
	return i.db.
		Model(&dbmodels.ScreeningJob{}).
		Where("id = ?", id).
		Update("token_usage", usage).
		Error
}

func (i impl) List(limit int) ([]dbmodels.ScreeningJob, error) {
	if limit <= 0 {
		limit = 50
	}
	list := []dbmodels.ScreeningJob{}
	err := i.db.
		Model(&dbmodels.ScreeningJob{}).
		Order("created_at desc").
		Limit(limit).
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}
