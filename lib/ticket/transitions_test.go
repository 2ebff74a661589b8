package tickethandler

import (
	"testing"

	"github.com/stretchr/testify/require"

	"hr-automation-hub/models"
	"hr-automation-hub/models/apperrors"
)

func TestTransitions(t *testing.T) {
	t.Run(`allowed transitions check`, func(t *testing.T) {
		cases := []struct {
			from models.TicketStatus
			to   models.TicketStatus
			ok   bool
		}{
			{models.TicketStatusCreated, models.TicketStatusPendingApproval, true},
			{models.TicketStatusCreated, models.TicketStatusInProgress, true},
			{models.TicketStatusCreated, models.TicketStatusClosed, true},
			{models.TicketStatusCreated, models.TicketStatusResolved, true},
			{models.TicketStatusCreated, models.TicketStatusApproved, false},
			{models.TicketStatusPendingApproval, models.TicketStatusApproved, true},
			{models.TicketStatusPendingApproval, models.TicketStatusRejected, true},
			{models.TicketStatusPendingApproval, models.TicketStatusInProgress, false},
			{models.TicketStatusApproved, models.TicketStatusInProgress, true},
			{models.TicketStatusApproved, models.TicketStatusClosed, true},
			{models.TicketStatusRejected, models.TicketStatusClosed, true},
			{models.TicketStatusRejected, models.TicketStatusInProgress, false},
			{models.TicketStatusInProgress, models.TicketStatusWaitingOnUser, true},
			{models.TicketStatusInProgress, models.TicketStatusResolved, true},
			{models.TicketStatusInProgress, models.TicketStatusClosed, true},
			{models.TicketStatusWaitingOnUser, models.TicketStatusInProgress, true},
			{models.TicketStatusWaitingOnUser, models.TicketStatusResolved, true},
			{models.TicketStatusResolved, models.TicketStatusInProgress, true},
			{models.TicketStatusResolved, models.TicketStatusClosed, true},
			{models.TicketStatusClosed, models.TicketStatusCreated, false},
			{models.TicketStatusClosed, models.TicketStatusInProgress, false},
		}
		for _, c := range cases {
			require.Equal(t, c.ok, CanTransition(c.from, c.to), "%s -> %s", c.from, c.to)
		}
	})

	t.Run(`CheckTransition returns conflict`, func(t *testing.T) {
		err := CheckTransition(models.TicketStatusClosed, models.TicketStatusInProgress)
		require.NotNil(t, err)
		require.True(t, apperrors.IsConflict(err))

		err = CheckTransition(models.TicketStatusCreated, models.TicketStatusInProgress)
		require.Nil(t, err)
	})
}
