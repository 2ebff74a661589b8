package applicationhandler

import (
	"hr-automation-hub/db"
	applicationstore "hr-automation-hub/lib/application/store"
	candidatestore "hr-automation-hub/lib/candidate/store"
	jobstore "hr-automation-hub/lib/job/store"
	resumestore "hr-automation-hub/lib/resume/store"
	"hr-automation-hub/models"
	"hr-automation-hub/models/apperrors"
	dbmodels "hr-automation-hub/models/db"
)

type Provider interface {
	// Apply — отклик кандидата на вакансию, с последним резюме если есть
	Apply(userID, jobID string) (*dbmodels.Application, error)
	Mine(userID string) ([]dbmodels.Application, error)
	SetStatus(id string, status models.ApplicationStatus) (*dbmodels.Application, error)
	List() ([]dbmodels.Application, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store:          applicationstore.NewInstance(db.DB),
		candidateStore: candidatestore.NewInstance(db.DB),
		jobStore:       jobstore.NewInstance(db.DB),
		resumeStore:    resumestore.NewInstance(db.DB),
	}
}

type impl struct {
	store          applicationstore.Provider
	candidateStore candidatestore.Provider
	jobStore       jobstore.Provider
	resumeStore    resumestore.Provider
}

func (i impl) Apply(userID, jobID string) (*dbmodels.Application, error) {
	candidate, err := i.candidateStore.GetByUserID(userID)
	if err != nil {
		return nil, err
	}
	if candidate == nil {
		return nil, apperrors.NewNotFoundError("Candidate profile not found")
	}
	job, err := i.jobStore.GetByID(jobID)
	if err != nil {
		return nil, err
	}
	if job == nil {
		return nil, apperrors.NewNotFoundError("Job not found")
	}
	if job.Status != dbmodels.JobStatusOpen {
		return nil, apperrors.NewInvalidOperationError("Job is closed")
	}
	existing, err := i.store.GetByCandidateAndJob(candidate.ID, jobID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperrors.NewConflictError("Already applied to this job")
	}
	rec := dbmodels.Application{
		CandidateID: candidate.ID,
		JobID:       jobID,
		Status:      models.ApplicationStatusApplied,
		CreatedByID: userID,
	}
	resume, err := i.resumeStore.GetLatestByCandidate(candidate.ID)
	if err != nil {
		return nil, err
	}
	if resume != nil {
		rec.ResumeID = &resume.ID
	}
	id, err := i.store.Create(rec)
	if err != nil {
		return nil, err
	}
	return i.store.GetByID(id)
}

func (i impl) Mine(userID string) ([]dbmodels.Application, error) {
	candidate, err := i.candidateStore.GetByUserID(userID)
	if err != nil {
		return nil, err
	}
	if candidate == nil {
		return []dbmodels.Application{}, nil
	}
	return i.store.ListByCandidate(candidate.ID)
}

func (i impl) SetStatus(id string, status models.ApplicationStatus) (*dbmodels.Application, error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, apperrors.NewNotFoundError("Application not found")
	}
	err = i.store.Update(id, map[string]interface{}{
		"status": status,
	})
	if err != nil {
		return nil, err
	}
	return i.store.GetByID(id)
}

func (i impl) List() ([]dbmodels.Application, error) {
	return i.store.List()
}
