package dashboardapimodels

import (
	dbmodels "hr-automation-hub/models/db"
)

type HRDashboard struct {
	PipelineCounts   map[string]int64     `json:"pipelineCounts"`
	LatestScreenings []dbmodels.Screening `json:"latestScreenings"`
}

type ITDashboard struct {
	SystemHealth   map[string]string `json:"systemHealth"`
	ScreeningStats ScreeningStats    `json:"screeningStats"`
	OpenTickets    int64             `json:"openTickets"`
}

type ScreeningStats struct {
	Total     int64 `json:"total"`
	Completed int64 `json:"completed"`
	Failed    int64 `json:"failed"`
}

type ManagerDashboard struct {
	Screened    []dbmodels.Candidate `json:"screened"`
	Interviewed []dbmodels.Candidate `json:"interviewed"`
	Shortlisted []dbmodels.Candidate `json:"shortlisted"`
}

type FinanceDashboard struct {
	OpenJobs         int64 `json:"openJobs"`
	PendingApprovals int64 `json:"pendingApprovals"`
}
