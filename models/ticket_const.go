package models

type TicketStatus string

const (
	TicketStatusCreated         TicketStatus = "Created"
	TicketStatusPendingApproval TicketStatus = "PendingApproval"
	TicketStatusApproved        TicketStatus = "Approved"
	TicketStatusRejected        TicketStatus = "Rejected"
	TicketStatusInProgress      TicketStatus = "InProgress"
	TicketStatusWaitingOnUser   TicketStatus = "WaitingOnUser"
	TicketStatusResolved        TicketStatus = "Resolved"
	TicketStatusClosed          TicketStatus = "Closed"
)

func (s TicketStatus) IsValid() bool {
	switch s {
	case TicketStatusCreated, TicketStatusPendingApproval, TicketStatusApproved,
		TicketStatusRejected, TicketStatusInProgress, TicketStatusWaitingOnUser,
		TicketStatusResolved, TicketStatusClosed:
		return true
	}
	return false
}

// тикет считается открытым, пока не решён и не закрыт
func (s TicketStatus) IsOpen() bool {
	return s != TicketStatusResolved && s != TicketStatusClosed
}

type TicketPriority string

const (
	TicketPriorityLow    TicketPriority = "low"
	TicketPriorityMedium TicketPriority = "medium"
	TicketPriorityHigh   TicketPriority = "high"
	TicketPriorityUrgent TicketPriority = "urgent"
)

func (p TicketPriority) IsValid() bool {
	switch p {
	case TicketPriorityLow, TicketPriorityMedium, TicketPriorityHigh, TicketPriorityUrgent:
		return true
	}
	return false
}

type RouteStatus string

const (
	RouteStatusUnrouted RouteStatus = "unrouted"
	RouteStatusRouted   RouteStatus = "routed"
)

type ScreeningJobStatus string

const (
	ScreeningJobStatusQueued     ScreeningJobStatus = "queued"
	ScreeningJobStatusProcessing ScreeningJobStatus = "processing"
	ScreeningJobStatusCompleted  ScreeningJobStatus = "completed"
	ScreeningJobStatusFailed     ScreeningJobStatus = "failed"
)

type ScreeningStatus string

const (
	ScreeningStatusQueued    ScreeningStatus = "queued"
	ScreeningStatusCompleted ScreeningStatus = "completed"
	ScreeningStatusFailed    ScreeningStatus = "failed"
)

type OfferStatus string

const (
	OfferStatusDraft          OfferStatus = "draft"
	OfferStatusPendingFinance OfferStatus = "pending_finance"
	OfferStatusApproved       OfferStatus = "approved"
	OfferStatusRejected       OfferStatus = "rejected"
	OfferStatusSent           OfferStatus = "sent"
	OfferStatusAccepted       OfferStatus = "accepted"
	OfferStatusDeclined       OfferStatus = "declined"
)

func (s OfferStatus) IsValid() bool {
	switch s {
	case OfferStatusDraft, OfferStatusPendingFinance, OfferStatusApproved,
		OfferStatusRejected, OfferStatusSent, OfferStatusAccepted, OfferStatusDeclined:
		return true
	}
	return false
}

type ApplicationStatus string

const (
	ApplicationStatusApplied   ApplicationStatus = "applied"
	ApplicationStatusScreening ApplicationStatus = "screening"
	ApplicationStatusInterview ApplicationStatus = "interview"
	ApplicationStatusOffered   ApplicationStatus = "offered"
	ApplicationStatusRejected  ApplicationStatus = "rejected"
	ApplicationStatusHired     ApplicationStatus = "hired"
)

type ApprovalStatus string

const (
	ApprovalStatusPending  ApprovalStatus = "Pending"
	ApprovalStatusApproved ApprovalStatus = "Approved"
	ApprovalStatusRejected ApprovalStatus = "Rejected"
)
