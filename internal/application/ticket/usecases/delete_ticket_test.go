package usecases

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "ticketdesk/internal/shared/errors"
)

func TestDeleteTicketUseCase_Execute(t *testing.T) {
	var deleted uint
	repo := &mockTicketRepository{
		ExistsFunc: func(ctx context.Context, ticketID uint) (bool, error) {
			t.Fatalf("unexpected Exists call for ticket %d", ticketID)
			return false, nil
		},
		DeleteFunc: func(ctx context.Context, ticketID uint) error {
			if ticketID != 3 {
				return apperrors.NewNotFoundError("ticket not found")
			}
			deleted = ticketID
			return nil
		},
	}
	tx := &passthroughTx{}
	uc := NewDeleteTicketUseCase(repo, tx, &mockLogger{})

	result, err := uc.Execute(context.Background(), DeleteTicketCommand{TicketID: 3})
	require.NoError(t, err)
	assert.Equal(t, uint(3), result.TicketID)
	assert.Equal(t, uint(3), deleted)
	assert.Equal(t, 1, tx.calls)

	_, err = uc.Execute(context.Background(), DeleteTicketCommand{TicketID: 4})
	assert.True(t, apperrors.IsNotFoundError(err))
	assert.Equal(t, "ticket not found", apperrors.GetAppError(err).Message)
	assert.Equal(t, 2, tx.calls)

	_, err = uc.Execute(context.Background(), DeleteTicketCommand{})
	assert.True(t, apperrors.IsValidationError(err))
}

func TestDeleteTicketUseCase_Execute_RepositoryError(t *testing.T) {
	repo := &mockTicketRepository{
		DeleteFunc: func(ctx context.Context, ticketID uint) error {
			return errors.New("lock wait timeout")
		},
	}
	uc := NewDeleteTicketUseCase(repo, &passthroughTx{}, &mockLogger{})

	_, err := uc.Execute(context.Background(), DeleteTicketCommand{TicketID: 1})
	require.Error(t, err)
	assert.False(t, apperrors.IsAppError(err))
	assert.Contains(t, err.Error(), "failed to delete ticket")
}
