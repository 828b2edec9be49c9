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

type CreateTicketCommand struct {
	Title       string
	Description string
	Priority    string
	Severity    string
	ReporterID  *uint
	AssigneeID  *uint
}

type CreateTicketUseCase struct {
	ticketRepo ticket.TicketRepository
	users      UserLookup
	logger     logger.Interface
}

func NewCreateTicketUseCase(
	ticketRepo ticket.TicketRepository,
	users UserLookup,
	logger logger.Interface,
) *CreateTicketUseCase {
	return &CreateTicketUseCase{
		ticketRepo: ticketRepo,
		users:      users,
		logger:     logger,
	}
}

func (uc *CreateTicketUseCase) Execute(ctx context.Context, cmd CreateTicketCommand) (*dto.TicketDTO, error) {
	uc.logger.Infow("executing create ticket use case", "title", cmd.Title)

	if err := uc.validateCommand(cmd); err != nil {
		uc.logger.Warnw("invalid create ticket command", "error", err)
		return nil, err
	}

	newTicket, err := ticket.NewTicket(
		cmd.Title,
		cmd.Description,
		vo.Priority(cmd.Priority),
		vo.Severity(cmd.Severity),
		cmd.ReporterID,
		cmd.AssigneeID,
	)
	if err != nil {
		uc.logger.Warnw("failed to create ticket entity", "error", err)
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.ticketRepo.Save(ctx, newTicket); err != nil {
		uc.logger.Errorw("failed to save ticket", "error", err)
		return nil, fmt.Errorf("failed to save ticket: %w", err)
	}

	uc.logger.Infow("ticket created successfully", "ticket_id", newTicket.ID())

	return dto.ToTicketDTO(newTicket, resolveUsernames(ctx, uc.users, uc.logger, newTicket)), nil
}

func (uc *CreateTicketUseCase) validateCommand(cmd CreateTicketCommand) error {
	if len(cmd.Title) == 0 {
		return errors.NewValidationError("title is required")
	}
	if len(cmd.Priority) == 0 {
		return errors.NewValidationError("priority is required")
	}
	if _, err := vo.NewPriority(cmd.Priority); err != nil {
		return errors.NewValidationError(err.Error())
	}
	if len(cmd.Severity) == 0 {
		return errors.NewValidationError("severity is required")
	}
	if _, err := vo.NewSeverity(cmd.Severity); err != nil {
		return errors.NewValidationError(err.Error())
	}
	return nil
}
