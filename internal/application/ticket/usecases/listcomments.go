package usecases

import (
	"context"
	"fmt"

	"ticketdesk/internal/application/ticket/dto"
	"ticketdesk/internal/domain/ticket"
	"ticketdesk/internal/shared/errors"
	"ticketdesk/internal/shared/logger"
)

type ListCommentsQuery struct {
	TicketID uint
}

type ListCommentsUseCase struct {
	ticketRepo  ticket.TicketRepository
	commentRepo ticket.CommentRepository
	logger      logger.Interface
}

func NewListCommentsUseCase(
	ticketRepo ticket.TicketRepository,
	commentRepo ticket.CommentRepository,
	logger logger.Interface,
) *ListCommentsUseCase {
	return &ListCommentsUseCase{
		ticketRepo:  ticketRepo,
		commentRepo: commentRepo,
		logger:      logger,
	}
}

func (uc *ListCommentsUseCase) Execute(ctx context.Context, query ListCommentsQuery) ([]*dto.CommentDTO, error) {
	exists, err := uc.ticketRepo.Exists(ctx, query.TicketID)
	if err != nil {
		uc.logger.Errorw("failed to check ticket existence", "ticket_id", query.TicketID, "error", err)
		return nil, fmt.Errorf("failed to check ticket existence: %w", err)
	}
	if !exists {
		return nil, errors.NewNotFoundError("ticket not found")
	}

	comments, err := uc.commentRepo.ListByTicketID(ctx, query.TicketID)
	if err != nil {
		uc.logger.Errorw("failed to list comments", "ticket_id", query.TicketID, "error", err)
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}

	return dto.ToCommentDTOs(comments), nil
}
