package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ticketdesk/internal/domain/ticket"
	apperrors "ticketdesk/internal/shared/errors"
)

func TestListCommentsUseCase_Execute(t *testing.T) {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	first, err := ticket.ReconstructComment(1, 3, "first", 1, "a", base)
	require.NoError(t, err)
	second, err := ticket.ReconstructComment(2, 3, "second", 2, "b", base.Add(time.Minute))
	require.NoError(t, err)

	commentRepo := &mockCommentRepository{
		ListByTicketIDFunc: func(ctx context.Context, ticketID uint) ([]*ticket.Comment, error) {
			assert.Equal(t, uint(3), ticketID)
			return []*ticket.Comment{first, second}, nil
		},
	}

	uc := NewListCommentsUseCase(&mockTicketRepository{}, commentRepo, &mockLogger{})
	result, err := uc.Execute(context.Background(), ListCommentsQuery{TicketID: 3})

	require.NoError(t, err)
	require.Len(t, result, 2)
	assert.Equal(t, "first", result[0].Content)
	assert.Equal(t, "second", result[1].Content)
}

func TestListCommentsUseCase_Execute_TicketMissing(t *testing.T) {
	ticketRepo := &mockTicketRepository{
		ExistsFunc: func(ctx context.Context, ticketID uint) (bool, error) {
			return false, nil
		},
	}

	uc := NewListCommentsUseCase(ticketRepo, &mockCommentRepository{}, &mockLogger{})
	_, err := uc.Execute(context.Background(), ListCommentsQuery{TicketID: 3})

	assert.True(t, apperrors.IsNotFoundError(err))
}

func TestListCommentsUseCase_Execute_EmptyIsNotNil(t *testing.T) {
	uc := NewListCommentsUseCase(&mockTicketRepository{}, &mockCommentRepository{}, &mockLogger{})
	result, err := uc.Execute(context.Background(), ListCommentsQuery{TicketID: 3})

	require.NoError(t, err)
	assert.NotNil(t, result)
	assert.Empty(t, result)
}
