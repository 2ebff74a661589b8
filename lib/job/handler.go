package jobhandler

import (
	"github.com/lib/pq"

	"hr-automation-hub/db"
	jobstore "hr-automation-hub/lib/job/store"
	jobapimodels "hr-automation-hub/models/api/job"
	"hr-automation-hub/models/apperrors"
	dbmodels "hr-automation-hub/models/db"
)

type Provider interface {
	Create(data jobapimodels.CreateJobRequest) (*dbmodels.Job, error)
	GetByID(id string) (*dbmodels.Job, error)
	List() ([]dbmodels.Job, error)
	Close(id string) (*dbmodels.Job, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store: jobstore.NewInstance(db.DB),
	}
}

type impl struct {
	store jobstore.Provider
}

func (i impl) Create(data jobapimodels.CreateJobRequest) (*dbmodels.Job, error) {
	id, err := i.store.Create(dbmodels.Job{
		Title:        data.Title,
		Department:   data.Department,
		JDText:       data.JDText,
		Requirements: pq.StringArray(data.Requirements),
		Status:       dbmodels.JobStatusOpen,
	})
	if err != nil {
		return nil, err
	}
	return i.store.GetByID(id)
}

func (i impl) GetByID(id string) (*dbmodels.Job, error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, apperrors.NewNotFoundError("Job not found")
	}
	return rec, nil
}

func (i impl) List() ([]dbmodels.Job, error) {
	return i.store.List()
}

func (i impl) Close(id string) (*dbmodels.Job, error) {
	if _, err := i.GetByID(id); err != nil {
		return nil, err
	}
	err := i.store.Update(id, map[string]interface{}{
		"status": dbmodels.JobStatusClosed,
	})
	if err != nil {
		return nil, err
	}
	return i.store.GetByID(id)
}
