package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ticketdesk/internal/domain/ticket"
	vo "ticketdesk/internal/domain/ticket/valueobjects"
)

func TestCommentRepository_ListByTicketID_OldestFirst(t *testing.T) {
	gdb := setupTestDB(t)
	tickets := NewTicketRepository(gdb)
	repo := NewCommentRepository(gdb)
	ctx := context.Background()
	steppingClock(t, time.Date(2024, 4, 1, 9, 0, 0, 0, time.UTC))

	tk := newTicket(t, "t", vo.PriorityLow, nil)
	other := newTicket(t, "other", vo.PriorityLow, nil)
	require.NoError(t, tickets.Save(ctx, tk))
	require.NoError(t, tickets.Save(ctx, other))

	for _, content := range []string{"one", "two", "three"} {
		c, err := ticket.NewComment(tk.ID(), content, 1, "alice")
		require.NoError(t, err)
		require.NoError(t, repo.Save(ctx, c))
		assert.NotZero(t, c.ID())
	}
	c, err := ticket.NewComment(other.ID(), "elsewhere", 1, "alice")
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, c))

	list, err := repo.ListByTicketID(ctx, tk.ID())
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "one", list[0].Content())
	assert.Equal(t, "two", list[1].Content())
	assert.Equal(t, "three", list[2].Content())
	assert.Equal(t, "alice", list[0].AuthorName())
	assert.True(t, list[0].CreatedAt().Before(list[2].CreatedAt()))

	empty, err := repo.ListByTicketID(ctx, 999)
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)
}
