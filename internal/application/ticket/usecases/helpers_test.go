package usecases

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"ticketdesk/internal/domain/ticket"
	vo "ticketdesk/internal/domain/ticket/valueobjects"
	"ticketdesk/internal/domain/user"
)

func uintPtr(v uint) *uint {
	return &v
}

func strPtr(s string) *string {
	return &s
}

func existingTicket(t *testing.T, id uint, reporterID, assigneeID *uint) *ticket.Ticket {
	t.Helper()
	at := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	tk, err := ticket.ReconstructTicket(id, "Printer on fire", "third floor", vo.StatusOpen,
		vo.PriorityHigh, vo.SeverityMajor, reporterID, assigneeID, at, at)
	require.NoError(t, err)
	return tk
}

func existingUser(t *testing.T, id uint, username string) *user.User {
	t.Helper()
	u, err := user.ReconstructUser(id, username, "hash", username+"@example.com", "USER", time.Now())
	require.NoError(t, err)
	return u
}
