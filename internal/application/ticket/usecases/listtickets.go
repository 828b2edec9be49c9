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

// ListTicketsQuery filters tickets by exact match on every non-nil field.
type ListTicketsQuery struct {
	Status     *string
	Priority   *string
	ReporterID *uint
}

type ListTicketsUseCase struct {
	ticketRepo ticket.TicketRepository
	users      UserLookup
	logger     logger.Interface
}

func NewListTicketsUseCase(
	ticketRepo ticket.TicketRepository,
	users UserLookup,
	logger logger.Interface,
) *ListTicketsUseCase {
	return &ListTicketsUseCase{
		ticketRepo: ticketRepo,
		users:      users,
		logger:     logger,
	}
}

func (uc *ListTicketsUseCase) Execute(ctx context.Context, query ListTicketsQuery) ([]*dto.TicketDTO, error) {
	filter, err := uc.buildFilter(query)
	if err != nil {
		return nil, err
	}

	var tickets []*ticket.Ticket
	if filter.IsEmpty() {
		tickets, err = uc.ticketRepo.FindAll(ctx)
	} else {
		tickets, err = uc.ticketRepo.Search(ctx, filter)
	}
	if err != nil {
		uc.logger.Errorw("failed to list tickets", "error", err)
		return nil, fmt.Errorf("failed to list tickets: %w", err)
	}

	return dto.ToTicketDTOs(tickets, resolveUsernames(ctx, uc.users, uc.logger, tickets...)), nil
}

func (uc *ListTicketsUseCase) buildFilter(query ListTicketsQuery) (ticket.TicketFilter, error) {
	var filter ticket.TicketFilter

	if query.Status != nil {
		status, err := vo.NewTicketStatus(*query.Status)
		if err != nil {
			return filter, errors.NewValidationError(err.Error())
		}
		filter.Status = &status
	}

	if query.Priority != nil {
		priority, err := vo.NewPriority(*query.Priority)
		if err != nil {
			return filter, errors.NewValidationError(err.Error())
		}
		filter.Priority = &priority
	}

	filter.ReporterID = query.ReporterID
	return filter, nil
}
