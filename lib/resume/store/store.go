package resumestore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"

	dbmodels "hr-automation-hub/models/db"
)

type Provider interface {
	Create(rec dbmodels.Resume) (id string, err error)
	GetByID(id string) (rec *dbmodels.Resume, err error)
	// GetLatestByCandidate — последнее загруженное резюме кандидата
	GetLatestByCandidate(candidateID string) (rec *dbmodels.Resume, err error)
	ListByCandidate(candidateID string, limit int) (list []dbmodels.Resume, err error)
	// RecentCandidateIDs — кандидаты с самыми свежими резюме, для пакетного скрининга
	RecentCandidateIDs(limit int) (ids []string, err error)
	SetParsedText(id, text string) error
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Resume) (string, error) {
	err := i.db.
		Create(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(id string) (*dbmodels.Resume, error) {
	rec := dbmodels.Resume{}
	err := i.db.
		Model(&dbmodels.Resume{}).
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

func (i impl) GetLatestByCandidate(candidateID string) (*dbmodels.Resume, error) {
	rec := dbmodels.Resume{}
	err := i.db.
		Model(&dbmodels.Resume{}).
		Where("candidate_id = ?", candidateID).
		Order("created_at desc").
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

func (i impl) ListByCandidate(candidateID string, limit int) ([]dbmodels.Resume, error) {
	if limit <= 0 {
		limit = 10
	}
	list := []dbmodels.Resume{}
	err := i.db.
		Model(&dbmodels.Resume{}).
		Where("candidate_id = ?", candidateID).
		Order("created_at desc").
		Limit(limit).
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) RecentCandidateIDs(limit int) ([]string, error) {
	if limit <= 0 {
		limit = 10
	}
	ids := []string{}
	err := i.db.
		Model(&dbmodels.Resume{}).
		Select("candidate_id").
		Group("candidate_id").
		Order("max(created_at) desc").
		Limit(limit).
		Pluck("candidate_id", &ids).
		Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}

func (i impl) SetParsedText(id, text string) error {
	return i.db.
		Model(&dbmodels.Resume{}).
		Where("id = ?", id).
		Update("parsed_text", text).
		Error
}
