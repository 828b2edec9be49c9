package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ticketdesk/internal/domain/ticket"
	vo "ticketdesk/internal/domain/ticket/valueobjects"
	"ticketdesk/internal/infrastructure/persistence/models"
	"ticketdesk/internal/shared/db"
	apperrors "ticketdesk/internal/shared/errors"
)

func newTicket(t *testing.T, title string, priority vo.Priority, reporterID *uint) *ticket.Ticket {
	t.Helper()
	tk, err := ticket.NewTicket(title, "description", priority, vo.SeverityMinor, reporterID, nil)
	require.NoError(t, err)
	return tk
}

func TestTicketRepository_SaveAndGet(t *testing.T) {
	repo := NewTicketRepository(setupTestDB(t))
	ctx := context.Background()
	steppingClock(t, time.Date(2024, 4, 1, 9, 0, 0, 0, time.UTC))

	tk := newTicket(t, "Broken build", vo.PriorityHigh, uintPtr(2))
	require.NoError(t, repo.Save(ctx, tk))
	assert.NotZero(t, tk.ID())

	found, err := repo.GetByID(ctx, tk.ID())
	require.NoError(t, err)
	assert.Equal(t, "Broken build", found.Title())
	assert.Equal(t, vo.StatusOpen, found.Status())
	assert.Equal(t, vo.PriorityHigh, found.Priority())
	assert.Equal(t, uint(2), *found.ReporterID())
	assert.Nil(t, found.AssigneeID())
	assert.Equal(t, tk.CreatedAt(), found.CreatedAt())

	_, err = repo.GetByID(ctx, 999)
	assert.True(t, apperrors.IsNotFoundError(err))
}

func TestTicketRepository_Update(t *testing.T) {
	repo := NewTicketRepository(setupTestDB(t))
	ctx := context.Background()
	steppingClock(t, time.Date(2024, 4, 1, 9, 0, 0, 0, time.UTC))

	tk, err := ticket.NewTicket("t", "d", vo.PriorityLow, vo.SeverityMinor, uintPtr(1), uintPtr(3))
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, tk))

	empty := ""
	status := vo.StatusInProgress
	require.NoError(t, tk.ApplyChanges(ticket.TicketChanges{
		Description:   &empty,
		Status:        &status,
		ClearAssignee: true,
	}))
	require.NoError(t, repo.Update(ctx, tk))

	found, err := repo.GetByID(ctx, tk.ID())
	require.NoError(t, err)
	assert.Equal(t, "", found.Description())
	assert.Equal(t, vo.StatusInProgress, found.Status())
	assert.Nil(t, found.AssigneeID())
	assert.Equal(t, uint(1), *found.ReporterID())
	assert.Equal(t, tk.CreatedAt(), found.CreatedAt())
	assert.Equal(t, tk.UpdatedAt(), found.UpdatedAt())
	assert.True(t, found.UpdatedAt().After(found.CreatedAt()))
}

func TestTicketRepository_Delete_CascadesComments(t *testing.T) {
	gdb := setupTestDB(t)
	repo := NewTicketRepository(gdb)
	comments := NewCommentRepository(gdb)
	ctx := context.Background()

	keep := newTicket(t, "keep", vo.PriorityLow, nil)
	drop := newTicket(t, "drop", vo.PriorityLow, nil)
	require.NoError(t, repo.Save(ctx, keep))
	require.NoError(t, repo.Save(ctx, drop))

	for _, parent := range []uint{keep.ID(), drop.ID(), drop.ID()} {
		c, err := ticket.NewComment(parent, "note", 1, "alice")
		require.NoError(t, err)
		require.NoError(t, comments.Save(ctx, c))
	}

	require.NoError(t, repo.Delete(ctx, drop.ID()))

	var remaining []models.CommentModel
	require.NoError(t, gdb.Find(&remaining).Error)
	require.Len(t, remaining, 1)
	assert.Equal(t, keep.ID(), remaining[0].TicketID)

	exists, err := repo.Exists(ctx, drop.ID())
	require.NoError(t, err)
	assert.False(t, exists)

	err = repo.Delete(ctx, drop.ID())
	assert.True(t, apperrors.IsNotFoundError(err))
}

func TestTicketRepository_Delete_RollsBackWithOuterTransaction(t *testing.T) {
	gdb := setupTestDB(t)
	repo := NewTicketRepository(gdb)
	comments := NewCommentRepository(gdb)
	txMgr := db.NewTransactionManager(gdb)
	ctx := context.Background()

	tk := newTicket(t, "t", vo.PriorityLow, nil)
	require.NoError(t, repo.Save(ctx, tk))
	c, err := ticket.NewComment(tk.ID(), "note", 1, "")
	require.NoError(t, err)
	require.NoError(t, comments.Save(ctx, c))

	err = txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := repo.Delete(txCtx, tk.ID()); err != nil {
			return err
		}
		return assert.AnError
	})
	require.ErrorIs(t, err, assert.AnError)

	exists, err := repo.Exists(ctx, tk.ID())
	require.NoError(t, err)
	assert.True(t, exists)

	list, err := comments.ListByTicketID(ctx, tk.ID())
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestTicketRepository_Delete_MissingInsideTransaction(t *testing.T) {
	gdb := setupTestDB(t)
	repo := NewTicketRepository(gdb)
	txMgr := db.NewTransactionManager(gdb)
	ctx := context.Background()

	tk := newTicket(t, "t", vo.PriorityLow, nil)
	require.NoError(t, repo.Save(ctx, tk))

	err := txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		return repo.Delete(txCtx, tk.ID()+100)
	})
	assert.True(t, apperrors.IsNotFoundError(err))

	exists, err := repo.Exists(ctx, tk.ID())
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestTicketRepository_Search(t *testing.T) {
	repo := NewTicketRepository(setupTestDB(t))
	ctx := context.Background()
	steppingClock(t, time.Date(2024, 4, 1, 9, 0, 0, 0, time.UTC))

	a := newTicket(t, "a", vo.PriorityHigh, uintPtr(1))
	b := newTicket(t, "b", vo.PriorityLow, uintPtr(2))
	c := newTicket(t, "c", vo.PriorityHigh, uintPtr(1))
	for _, tk := range []*ticket.Ticket{a, b, c} {
		require.NoError(t, repo.Save(ctx, tk))
	}

	resolved := vo.StatusResolved
	require.NoError(t, b.ApplyChanges(ticket.TicketChanges{Status: &resolved}))
	require.NoError(t, repo.Update(ctx, b))

	titles := func(list []*ticket.Ticket) []string {
		out := make([]string, 0, len(list))
		for _, tk := range list {
			out = append(out, tk.Title())
		}
		return out
	}

	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"c", "b", "a"}, titles(all))

	open := vo.StatusOpen
	byStatus, err := repo.Search(ctx, ticket.TicketFilter{Status: &open})
	require.NoError(t, err)
	assert.Equal(t, []string{"c", "a"}, titles(byStatus))
	for _, tk := range byStatus {
		assert.Equal(t, vo.StatusOpen, tk.Status())
	}

	high := vo.PriorityHigh
	combined, err := repo.Search(ctx, ticket.TicketFilter{Priority: &high, ReporterID: uintPtr(1)})
	require.NoError(t, err)
	assert.Equal(t, []string{"c", "a"}, titles(combined))

	none, err := repo.Search(ctx, ticket.TicketFilter{ReporterID: uintPtr(42)})
	require.NoError(t, err)
	assert.NotNil(t, none)
	assert.Empty(t, none)
}

func TestTicketRepository_Search_TieBreaksOnID(t *testing.T) {
	repo := NewTicketRepository(setupTestDB(t))
	ctx := context.Background()
	at := time.Date(2024, 4, 1, 9, 0, 0, 0, time.UTC)
	defer setFixedClock(at)()

	first := newTicket(t, "first", vo.PriorityLow, nil)
	second := newTicket(t, "second", vo.PriorityLow, nil)
	require.NoError(t, repo.Save(ctx, first))
	require.NoError(t, repo.Save(ctx, second))

	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, second.ID(), all[0].ID())
	assert.Equal(t, first.ID(), all[1].ID())
}
