package offerstore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"hr-automation-hub/models"
	dbmodels "hr-automation-hub/models/db"
)

type Provider interface {
	Create(rec dbmodels.Offer) (id string, err error)
	Update(id string, updMap map[string]interface{}) error
	GetByID(id string) (rec *dbmodels.Offer, err error)
	List() (list []dbmodels.Offer, err error)
	ListByStatus(status models.OfferStatus) (list []dbmodels.Offer, err error)
	ListByCandidate(candidateID string) (list []dbmodels.Offer, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Offer) (string, error) {
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
		Model(&dbmodels.Offer{}).
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

func (i impl) GetByID(id string) (*dbmodels.Offer, error) {
	rec := dbmodels.Offer{}
	err := i.db.
		Model(&dbmodels.Offer{}).
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

func (i impl) List() ([]dbmodels.Offer, error) {
	list := []dbmodels.Offer{}
	err := i.db.
		Model(&dbmodels.Offer{}).
		Order("created_at desc").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) ListByStatus(status models.OfferStatus) ([]dbmodels.Offer, error) {
	list := []dbmodels.Offer{}
	err := i.db.
		Model(&dbmodels.Offer{}).
		Where("status = ?", status).
		Order("created_at desc").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) ListByCandidate(candidateID string) ([]dbmodels.Offer, error) {
	list := []dbmodels.Offer{}
	err := i.db.
		Model(&dbmodels.Offer{}).
		Where("candidate_id = ?", candidateID).
		Order("created_at desc").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}
