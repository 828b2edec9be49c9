package usecases

import (
	"context"
	"fmt"

	"ticketdesk/internal/application/ticket/dto"
	"ticketdesk/internal/domain/ticket"
	vo "ticketdesk/internal/domain/ticket/valueobjects"
	"ticketdesk/internal/shared/errors"
	"ticketdesk/internal/shared/logger"
)

// UpdateTicketCommand overwrites each non-nil field. The reporter cannot be
// changed.
type UpdateTicketCommand struct {
	TicketID      uint
	Title         *string
	Description   *string
	Status        *string
	Priority      *string
	Severity      *string
	AssigneeID    *uint
	ClearAssignee bool
}

type UpdateTicketUseCase struct {
	ticketRepo ticket.TicketRepository
	users      UserLookup
	txMgr      TransactionRunner
	logger     logger.Interface
}

func NewUpdateTicketUseCase(
	ticketRepo ticket.TicketRepository,
	users UserLookup,
	txMgr TransactionRunner,
	logger logger.Interface,
) *UpdateTicketUseCase {
	return &UpdateTicketUseCase{
		ticketRepo: ticketRepo,
		users:      users,
		txMgr:      txMgr,
		logger:     logger,
	}
}

func (uc *UpdateTicketUseCase) Execute(ctx context.Context, cmd UpdateTicketCommand) (*dto.TicketDTO, error) {
	uc.logger.Infow("executing update ticket use case", "ticket_id", cmd.TicketID)

	if cmd.TicketID == 0 {
		return nil, errors.NewValidationError("ticket ID is required")
	}

	changes, err := toChanges(cmd)
	if err != nil {
		return nil, err
	}

	var updated *ticket.Ticket
	txErr := uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		t, err := uc.ticketRepo.GetByID(txCtx, cmd.TicketID)
		if err != nil {
			return err
		}

		if err := t.ApplyChanges(changes); err != nil {
			return errors.NewValidationError(err.Error())
		}

		if err := uc.ticketRepo.Update(txCtx, t); err != nil {
			return fmt.Errorf("failed to update ticket: %w", err)
		}

		updated = t
		return nil
	})
	if txErr != nil {
		if !errors.IsAppError(txErr) {
			uc.logger.Errorw("failed to update ticket", "ticket_id", cmd.TicketID, "error", txErr)
		}
		return nil, txErr
	}

	uc.logger.Infow("ticket updated successfully", "ticket_id", cmd.TicketID)

	return dto.ToTicketDTO(updated, resolveUsernames(ctx, uc.users, uc.logger, updated)), nil
}

func toChanges(cmd UpdateTicketCommand) (ticket.TicketChanges, error) {
	changes := ticket.TicketChanges{
		Title:         cmd.Title,
		Description:   cmd.Description,
		AssigneeID:    cmd.AssigneeID,
		ClearAssignee: cmd.ClearAssignee,
	}

	if cmd.Status != nil {
		status, err := vo.NewTicketStatus(*cmd.Status)
		if err != nil {
			return changes, errors.NewValidationError(err.Error())
		}
		changes.Status = &status
	}
	if cmd.Priority != nil {
		priority, err := vo.NewPriority(*cmd.Priority)
		if err != nil {
			return changes, errors.NewValidationError(err.Error())
		}
		changes.Priority = &priority
	}
	if cmd.Severity != nil {
		severity, err := vo.NewSeverity(*cmd.Severity)
		if err != nil {
			return changes, errors.NewValidationError(err.Error())
		}
		changes.Severity = &severity
	}

	return changes, nil
}
