package dashboardhandler

import (
	applicationstore "hr-automation-hub/lib/application/store"
	approvalstore "hr-automation-hub/lib/approval/store"
	candidatestore "hr-automation-hub/lib/candidate/store"
	jobstore "hr-automation-hub/lib/job/store"
	screeningstore "hr-automation-hub/lib/screening/store"
	ticketstore "hr-automation-hub/lib/ticket/store"

	"hr-automation-hub/db"
	"hr-automation-hub/models"
	dashboardapimodels "hr-automation-hub/models/api/dashboard"
	dbmodels "hr-automation-hub/models/db"
)

type Provider interface {
	HR() (*dashboardapimodels.HRDashboard, error)
	IT() (*dashboardapimodels.ITDashboard, error)
	Manager() (*dashboardapimodels.ManagerDashboard, error)
	Finance() (*dashboardapimodels.FinanceDashboard, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		applicationStore: applicationstore.NewInstance(db.DB),
		approvalStore:    approvalstore.NewInstance(db.DB),
		candidateStore:   candidatestore.NewInstance(db.DB),
		jobStore:         jobstore.NewInstance(db.DB),
		screeningStore:   screeningstore.NewInstance(db.DB),
		ticketStore:      ticketstore.NewInstance(db.DB),
	}
}

type impl struct {
	applicationStore applicationstore.Provider
	approvalStore    approvalstore.Provider
	candidateStore   candidatestore.Provider
	jobStore         jobstore.Provider
	screeningStore   screeningstore.Provider
	ticketStore      ticketstore.Provider
}

func (i impl) HR() (*dashboardapimodels.HRDashboard, error) {
	counts, err := i.applicationStore.CountByStatus()
	if err != nil {
		return nil, err
	}
	pipeline := map[string]int64{}
	for status, count := range counts {
		pipeline[string(status)] = count
	}
	latest, err := i.screeningStore.Latest(10)
	if err != nil {
		return nil, err
	}
	return &dashboardapimodels.HRDashboard{
		PipelineCounts:   pipeline,
		LatestScreenings: latest,
	}, nil
}

func (i impl) IT() (*dashboardapimodels.ITDashboard, error) {
	total, err := i.screeningStore.Count()
	if err != nil {
		return nil, err
	}
	completed, err := i.screeningStore.CountByStatus(models.ScreeningStatusCompleted)
	if err != nil {
		return nil, err
	}
	failed, err := i.screeningStore.CountByStatus(models.ScreeningStatusFailed)
	if err != nil {
		return nil, err
	}
	openTickets, err := i.ticketStore.CountOpen()
	if err != nil {
		return nil, err
	}
	return &dashboardapimodels.ITDashboard{
		SystemHealth: map[string]string{
			"api":      "ok",
			"database": "ok",
		},
		ScreeningStats: dashboardapimodels.ScreeningStats{
			Total:     total,
			Completed: completed,
			Failed:    failed,
		},
		OpenTickets: openTickets,
	}, nil
}

func (i impl) Manager() (*dashboardapimodels.ManagerDashboard, error) {
	candidates, err := i.candidateStore.List()
	if err != nil {
		return nil, err
	}
	result := dashboardapimodels.ManagerDashboard{
		Screened:    []dbmodels.Candidate{},
		Interviewed: []dbmodels.Candidate{},
		Shortlisted: []dbmodels.Candidate{},
	}
	for _, candidate := range candidates {
		switch candidate.CurrentStage() {
		case dbmodels.StageScreened:
			result.Screened = append(result.Screened, candidate)
		case dbmodels.StageInterviewed:
			result.Interviewed = append(result.Interviewed, candidate)
		case dbmodels.StageShortlisted:
			result.Shortlisted = append(result.Shortlisted, candidate)
		}
	}
	return &result, nil
}

func (i impl) Finance() (*dashboardapimodels.FinanceDashboard, error) {
	openJobs, err := i.jobStore.CountOpen()
	if err != nil {
		return nil, err
	}
	pendingApprovals, err := i.approvalStore.CountPending()
	if err != nil {
		return nil, err
	}
	return &dashboardapimodels.FinanceDashboard{
		OpenJobs:         openJobs,
		PendingApprovals: pendingApprovals,
	}, nil
}
