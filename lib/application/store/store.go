package applicationstore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"hr-automation-hub/models"
	dbmodels "hr-automation-hub/models/db"
)

type Provider interface {
	Create(rec dbmodels.Application) (id string, err error)
	Update(id string, updMap map[string]interface{}) error
	GetByID(id string) (rec *dbmodels.Application, err error)
	GetByCandidateAndJob(candidateID, jobID string) (rec *dbmodels.Application, err error)
	ListByJob(jobID string) (list []dbmodels.Application, err error)
	ListByCandidate(candidateID string) (list []dbmodels.Application, err error)
	List() (list []dbmodels.Application, err error)
	CountByStatus() (map[models.ApplicationStatus]int64, error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Application) (string, error) {
	err := i.db.
		Omit(clause.Associations).
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
		Model(&dbmodels.Application{}).
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

func (i impl) GetByID(id string) (*dbmodels.Application, error) {
	rec := dbmodels.Application{}
	err := i.db.
		Model(&dbmodels.Application{}).
		Where("id = ?", id).
		Preload(clause.Associations).
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

func (i impl) GetByCandidateAndJob(candidateID, jobID string) (*dbmodels.Application, error) {
	rec := dbmodels.Application{}
	err := i.db.
		Model(&dbmodels.Application{}).
		Where("candidate_id = ?", candidateID).
		Where("job_id = ?", jobID).
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

func (i impl) ListByJob(jobID string) ([]dbmodels.Application, error) {
	list := []dbmodels.Application{}
	err := i.db.
		Model(&dbmodels.Application{}).
		Where("job_id = ?", jobID).
		Preload(clause.Associations).
		Order("created_at desc").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) ListByCandidate(candidateID string) ([]dbmodels.Application, error) {
	list := []dbmodels.Application{}
	err := i.db.
		Model(&dbmodels.Application{}).
		Where("candidate_id = ?", candidateID).
		Preload(clause.Associations).
		Order("created_at desc").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) List() ([]dbmodels.Application, error) {
	list := []dbmodels.Application{}
	err := i.db.
		Model(&dbmodels.Application{}).
		Preload(clause.Associations).
		Order("created_at desc").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

// CountByStatus — счётчики для HR-дашборда
func (i impl) CountByStatus() (map[models.ApplicationStatus]int64, error) {
	rows := []struct {
		Status models.ApplicationStatus
		Cnt    int64
	}{}
	err := i.db.
		Model(&dbmodels.Application{}).
		Select("status, count(*) as cnt").
		Group("status").
		Find(&rows).
		Error
	if err != nil {
		return nil, err
	}
	result := map[models.ApplicationStatus]int64{}
	for _, row := range rows {
		result[row.Status] = row.Cnt
	}
	return result, nil
}
