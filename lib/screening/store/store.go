package screeningstore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"hr-automation-hub/models"
	dbmodels "hr-automation-hub/models/db"
)

type Provider interface {
	Save(rec dbmodels.Screening) (id string, err error)
	GetByID(id string) (rec *dbmodels.Screening, err error)
	// ListByJob возвращает скрининги вакансии, свежие сверху
	ListByJob(jobID string, limit int) (list []dbmodels.Screening, err error)
	ListByCandidate(candidateID string) (list []dbmodels.Screening, err error)
	// Latest — последние скрининги по всем вакансиям, для дашборда
	Latest(limit int) (list []dbmodels.Screening, err error)
	AvgScore() (float64, error)
	Count() (int64, error)
	CountByStatus(status models.ScreeningStatus) (int64, error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Save(rec dbmodels.Screening) (string, error) {
	err := i.db.
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(id string) (*dbmodels.Screening, error) {
	rec := dbmodels.Screening{}
	err := i.db.
		Model(&dbmodels.Screening{}).
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

func (i impl) ListByJob(jobID string, limit int) ([]dbmodels.Screening, error) {
	if limit <= 0 {
		limit = 200
	}
	list := []dbmodels.Screening{}
	err := i.db.
		Model(&dbmodels.Screening{}).
		Where("job_id = ?", jobID).
		Order("created_at desc").
		Limit(limit).
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) ListByCandidate(candidateID string) ([]dbmodels.Screening, error) {
	list := []dbmodels.Screening{}
	err := i.db.
		Model(&dbmodels.Screening{}).
		Where("candidate_id = ?", candidateID).
		Order("created_at desc").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) Latest(limit int) ([]dbmodels.Screening, error) {
	if limit <= 0 {
		limit = 10
	}
	list := []dbmodels.Screening{}
	err := i.db.
		Model(&dbmodels.Screening{}).
		Order("created_at desc").
		Limit(limit).
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) Count() (int64, error) {
	var count int64
	err := i.db.
		Model(&dbmodels.Screening{}).
		Count(&count).
		Error
	return count, err
}

func (i impl) AvgScore() (float64, error) {
	var avg *float64
	err := i.db.
		Model(&dbmodels.Screening{}).
		Where("status = ?", models.ScreeningStatusCompleted).
		Select("avg(score)").
		Scan(&avg).
		Error
	if err != nil {
		return 0, err
	}
	if avg == nil {
		return 0, nil
	}
	return *avg, nil
}

func (i impl) CountByStatus(status models.ScreeningStatus) (int64, error) {
	var count int64
	err := i.db.
		Model(&dbmodels.Screening{}).
		Where("status = ?", status).
		Count(&count).
		Error
	return count, err
}
