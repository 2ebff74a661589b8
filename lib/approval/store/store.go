package approvalstore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"hr-automation-hub/models"
	dbmodels "hr-automation-hub/models/db"
)

type Provider interface {
	Create(rec dbmodels.Approval) (id string, err error)
	GetByID(id string) (rec *dbmodels.Approval, err error)
	GetPendingByTicket(ticketID string) (rec *dbmodels.Approval, err error)
	SetDecision(id string, status models.ApprovalStatus, approverID, comments string) error
	ListPending() (list []dbmodels.Approval, err error)
	CountPending() (int64, error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Approval) (string, error) {
	err := i.db.
		Omit(clause.Associations).
		Create(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(id string) (*dbmodels.Approval, error) {
	rec := dbmodels.Approval{}
	err := i.db.
		Model(&dbmodels.Approval{}).
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

func (i impl) GetPendingByTicket(ticketID string) (*dbmodels.Approval, error) {
	rec := dbmodels.Approval{}
	err := i.db.
		Model(&dbmodels.Approval{}).
		Where("ticket_id = ?", ticketID).
		Where("status = ?", models.ApprovalStatusPending).
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

func (i impl) SetDecision(id string, status models.ApprovalStatus, approverID, comments string) error {
	tx := i.db.
		Model(&dbmodels.Approval{}).
		Where("id = ?", id).
		Where("status = ?", models.ApprovalStatusPending).
		Updates(map[string]interface{}{
			"status":      status,
			"approver_id": approverID,
			"comments":    comments,
		})
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return errors.New("согласование не найдено или уже решено")
	}
	return nil
}

func (i impl) CountPending() (int64, error) {
	var count int64
	err := i.db.
		Model(&dbmodels.Approval{}).
		Where("status = ?", models.ApprovalStatusPending).
		Count(&count).
		Error
	return count, err
}

func (i impl) ListPending() ([]dbmodels.Approval, error) {
	list := []dbmodels.Approval{}
	err := i.db.
		Model(&dbmodels.Approval{}).
		Where("status = ?", models.ApprovalStatusPending).
		Preload(clause.Associations).
		Order("created_at").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}
