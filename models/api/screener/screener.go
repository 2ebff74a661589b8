package screenerapimodels

import (
	dbmodels "hr-automation-hub/models/db"
	"hr-automation-hub/models/apperrors"
)

type EnqueueRequest struct {
	JobID string `json:"job_id"`
}

func (r EnqueueRequest) Validate() error {
	if r.JobID == "" {
		return apperrors.NewValidationError("Invalid job_id")
	}
	return nil
}

type RunRequest struct {
	JobID        string   `json:"job_id"`
	CandidateIDs []string `json:"candidate_ids"`
}

func (r RunRequest) Validate() error {
	if r.JobID == "" {
		return apperrors.NewValidationError("Invalid job_id")
	}
	return nil
}

type SingleRunRequest struct {
	CandidateID string `json:"candidateId"`
	JobID       string `json:"jobId"`
}

func (r SingleRunRequest) Validate() error {
	if r.CandidateID == "" || r.JobID == "" {
		return apperrors.NewValidationError("Invalid ids")
	}
	return nil
}

type JobView struct {
	ID         string              `json:"id"`
	Status     string              `json:"status"`
	Total      int                 `json:"total"`
	Processed  int                 `json:"processed"`
	Provider   string              `json:"provider"`
	TokenUsage *dbmodels.TokenUsage `json:"token_usage,omitempty"`
}

type EnqueueResponse struct {
	ScreeningJob JobView `json:"screening_job"`
}

// ResultView — нормализованное представление результата для клиента
type ResultView struct {
	ID           string   `json:"id"`
	CandidateID  string   `json:"candidate_id"`
	OverallScore *int     `json:"overall_score"`
	Highlights   []string `json:"highlights"`
	Risks        []string `json:"risks"`
}

func ConvertJob(rec dbmodels.ScreeningJob) JobView {
	return JobView{
		ID:         rec.ID,
		Status:     string(rec.Status),
		Total:      rec.Total,
		Processed:  rec.Processed,
		Provider:   rec.Provider,
		TokenUsage: rec.TokenUsage,
	}
}

func ConvertResult(rec dbmodels.Screening) ResultView {
	view := ResultView{
		ID:           rec.ID,
		CandidateID:  rec.CandidateID,
		OverallScore: rec.Score,
		Highlights:   rec.Highlights,
		Risks:        rec.Gaps,
	}
	if view.Highlights == nil {
		view.Highlights = []string{}
	}
	if view.Risks == nil {
		view.Risks = []string{}
	}
	return view
}
