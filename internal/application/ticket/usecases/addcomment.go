package usecases

import (
	"context"
	"fmt"

	"ticketdesk/internal/application/ticket/dto"
	"ticketdesk/internal/domain/ticket"
	"ticketdesk/internal/shared/errors"
	"ticketdesk/internal/shared/logger"
)

type AddCommentCommand struct {
	TicketID   uint
	Content    string
	AuthorID   uint
	AuthorName string
}

type AddCommentUseCase struct {
	ticketRepo  ticket.TicketRepository
	commentRepo ticket.CommentRepository
	txMgr       TransactionRunner
	logger      logger.Interface
}

func NewAddCommentUseCase(
	ticketRepo ticket.TicketRepository,
	commentRepo ticket.CommentRepository,
	txMgr TransactionRunner,
	logger logger.Interface,
) *AddCommentUseCase {
	return &AddCommentUseCase{
		ticketRepo:  ticketRepo,
		commentRepo: commentRepo,
		txMgr:       txMgr,
		logger:      logger,
	}
}

func (uc *AddCommentUseCase) Execute(ctx context.Context, cmd AddCommentCommand) (*dto.CommentDTO, error) {
	uc.logger.Infow("executing add comment use case", "ticket_id", cmd.TicketID, "author_id", cmd.AuthorID)

	comment, err := ticket.NewComment(cmd.TicketID, cmd.Content, cmd.AuthorID, cmd.AuthorName)
	if err != nil {
		uc.logger.Warnw("invalid comment", "error", err)
		return nil, errors.NewValidationError(err.Error())
	}

	// Parent check and insert must observe the same snapshot.
	txErr := uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		exists, err := uc.ticketRepo.Exists(txCtx, cmd.TicketID)
		if err != nil {
			return fmt.Errorf("failed to check ticket existence: %w", err)
		}
		if !exists {
			return errors.NewNotFoundError("ticket not found")
		}

		if err := uc.commentRepo.Save(txCtx, comment); err != nil {
			return fmt.Errorf("failed to save comment: %w", err)
		}
		return nil
	})
	if txErr != nil {
		if !errors.IsAppError(txErr) {
			uc.logger.Errorw("failed to add comment", "ticket_id", cmd.TicketID, "error", txErr)
		}
		return nil, txErr
	}

	uc.logger.Infow("comment added successfully", "comment_id", comment.ID(), "ticket_id", cmd.TicketID)
	return dto.ToCommentDTO(comment), nil
}
