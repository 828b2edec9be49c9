package usecases

import (
	"context"
	"fmt"

	"ticketdesk/internal/domain/ticket"
	"ticketdesk/internal/shared/errors"
	"ticketdesk/internal/shared/logger"
)

type DeleteTicketCommand struct {
	TicketID uint
}

type DeleteTicketResult struct {
	TicketID uint
}

type DeleteTicketUseCase struct {
	ticketRepo ticket.TicketRepository
	txMgr      TransactionRunner
	logger     logger.Interface
}

func NewDeleteTicketUseCase(
	ticketRepo ticket.TicketRepository,
	txMgr TransactionRunner,
	logger logger.Interface,
) *DeleteTicketUseCase {
	return &DeleteTicketUseCase{
		ticketRepo: ticketRepo,
		txMgr:      txMgr,
		logger:     logger,
	}
}

func (uc *DeleteTicketUseCase) Execute(ctx context.Context, cmd DeleteTicketCommand) (*DeleteTicketResult, error) {
	uc.logger.Infow("executing delete ticket use case", "ticket_id", cmd.TicketID)

	if cmd.TicketID == 0 {
		return nil, errors.NewValidationError("ticket ID is required")
	}

	// The repository reports a missing ticket; this layer only supplies the
	// transaction so the comment and ticket deletes commit together.
	txErr := uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.ticketRepo.Delete(txCtx, cmd.TicketID); err != nil {
			if errors.IsAppError(err) {
				return err
			}
			return fmt.Errorf("failed to delete ticket: %w", err)
		}
		return nil
	})
	if txErr != nil {
		if !errors.IsAppError(txErr) {
			uc.logger.Errorw("failed to delete ticket", "ticket_id", cmd.TicketID, "error", txErr)
		}
		return nil, txErr
	}

	uc.logger.Infow("ticket deleted successfully", "ticket_id", cmd.TicketID)

	return &DeleteTicketResult{
		TicketID: cmd.TicketID,
	}, nil
}
