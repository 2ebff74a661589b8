package projecthandler

import (
	"strings"

	"hr-automation-hub/db"
	projectstore "hr-automation-hub/lib/project/store"
	"hr-automation-hub/models/apperrors"
	dbmodels "hr-automation-hub/models/db"
)

type Provider interface {
	Create(ownerID, name, description string) (*dbmodels.Project, error)
	SetStatus(id string, status dbmodels.ProjectStatus) (*dbmodels.Project, error)
	ListByOwner(ownerID string) ([]dbmodels.Project, error)
	List() ([]dbmodels.Project, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store: projectstore.NewInstance(db.DB),
	}
}

type impl struct {
	store projectstore.Provider
}

func (i impl) Create(ownerID, name, description string) (*dbmodels.Project, error) {
	if strings.TrimSpace(name) == "" {
		return nil, apperrors.NewValidationError("Project name required")
	}
	id, err := i.store.Create(dbmodels.Project{
		OwnerID:     ownerID,
		Name:        name,
		Status:      dbmodels.ProjectStatusInProgress,
		Description: description,
	})
	if err != nil {
		return nil, err
	}
	return i.store.GetByID(id)
}

func (i impl) SetStatus(id string, status dbmodels.ProjectStatus) (*dbmodels.Project, error) {
	switch status {
	case dbmodels.ProjectStatusInProgress, dbmodels.ProjectStatusBlocked, dbmodels.ProjectStatusCompleted:
	default:
		return nil, apperrors.NewValidationError("Invalid status")
	}
	rec, err := i.store.GetByID(id)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, apperrors.NewNotFoundError("Project not found")
	}
	err = i.store.Update(id, map[string]interface{}{
		"status": status,
	})
	if err != nil {
		return nil, err
	}
	return i.store.GetByID(id)
}

func (i impl) ListByOwner(ownerID string) ([]dbmodels.Project, error) {
	return i.store.ListByOwner(ownerID)
}

func (i impl) List() ([]dbmodels.Project, error) {
	return i.store.List()
}
