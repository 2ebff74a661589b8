package ticketstore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"hr-automation-hub/models"
	ticketapimodels "hr-automation-hub/models/api/ticket"
	"hr-automation-hub/models/apperrors"
	dbmodels "hr-automation-hub/models/db"
)

type Provider interface {
	Create(rec dbmodels.Ticket) (id string, err error)
	GetByID(id string) (rec *dbmodels.Ticket, err error)
	// SaveWithVersion сохраняет тикет, если его версия в БД всё ещё равна
	// expectedVersion; иначе возвращает ConflictError
	SaveWithVersion(rec dbmodels.Ticket, expectedVersion int64) error
	List(userID string, filter ticketapimodels.TicketFilter) (list []dbmodels.Ticket, err error)
	Summary(department models.Department) (ticketapimodels.Summary, error)
	OpenCountByUsers(userIDs []string) (map[string]int64, error)
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

func (i impl) Create(rec dbmodels.Ticket) (string, error) {
	err := i.db.
		Create(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(id string) (*dbmodels.Ticket, error) {
	rec := dbmodels.Ticket{}
	err := i.db.
		Model(&dbmodels.Ticket{}).
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

func (i impl) SaveWithVersion(rec dbmodels.Ticket, expectedVersion int64) error {
	rec.Version = expectedVersion + 1
	tx := i.db.
		Model(&dbmodels.Ticket{}).
		Where("id = ?", rec.ID).
		Where("version = ?", expectedVersion).
		Select("*").
		Omit("id", "created_at").
		Updates(&rec)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return apperrors.NewConflictError("Ticket was modified concurrently")
	}
	return nil
}

func (i impl) List(userID string, filter ticketapimodels.TicketFilter) ([]dbmodels.Ticket, error) {
	page, limit := filter.GetPage()
	tx := i.db.
		Model(&dbmodels.Ticket{})
	if filter.Department != "" {
		tx = tx.Where("department = ?", filter.Department)
	}
	if filter.Status != "" {
		tx = tx.Where("status = ?", filter.Status)
	}
	if filter.Mine {
		tx = tx.Where("created_by_id = ? OR assigned_to_id = ?", userID, userID)
	}
	list := []dbmodels.Ticket{}
	err := tx.
		Order("created_at desc").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

// Summary считает счётчики дашборда отдела. pending и routed считаются
// независимо и могут пересекаться.
func (i impl) Summary(department models.Department) (ticketapimodels.Summary, error) {
	result := ticketapimodels.Summary{}
	base := func() *gorm.DB {
		return i.db.
			Model(&dbmodels.Ticket{}).
			Where("department = ?", department)
	}
	err := base().
		Where("status = ?", models.TicketStatusCreated).
		Count(&result.Pending).
		Error
	if err != nil {
		return result, err
	}
	err = base().
		Where("route_status = ?", models.RouteStatusRouted).
		Count(&result.Routed).
		Error
	if err != nil {
		return result, err
	}
	err = base().
		Where("status = ?", models.TicketStatusInProgress).
		Count(&result.Working).
		Error
	if err != nil {
		return result, err
	}
	err = base().
		Where("status = ?", models.TicketStatusResolved).
		Count(&result.Resolved).
		Error
	if err != nil {
		return result, err
	}
	return result, nil
}

func (i impl) CountOpen() (int64, error) {
	var count int64
	err := i.db.
		Model(&dbmodels.Ticket{}).
		Where("status NOT IN ?", []models.TicketStatus{models.TicketStatusResolved, models.TicketStatusClosed}).
		Count(&count).
		Error
	return count, err
}

// OpenCountByUsers — число открытых тикетов на каждого из userIDs
// по всем отделам: назначение возможно и через границу отдела.
// Пользователи без тикетов присутствуют в карте со счётчиком 0.
func (i impl) OpenCountByUsers(userIDs []string) (map[string]int64, error) {
	result := make(map[string]int64, len(userIDs))
	for _, id := range userIDs {
		result[id] = 0
	}
	if len(userIDs) == 0 {
		return result, nil
	}
	rows := []struct {
		AssignedToID string
		Cnt          int64
	}{}
	err := i.db.
		Model(&dbmodels.Ticket{}).
		Select("assigned_to_id, count(*) as cnt").
		Where("assigned_to_id IN ?", userIDs).
		Where("status NOT IN ?", []models.TicketStatus{models.TicketStatusResolved, models.TicketStatusClosed}).
		Group("assigned_to_id").
		Find(&rows).
		Error
	if err != nil {
		return nil, err
	}
	for _, row := range rows {
		result[row.AssignedToID] = row.Cnt
	}
	return result, nil
}
