package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"ticketdesk/internal/domain/ticket"
	"ticketdesk/internal/infrastructure/persistence/mappers"
	"ticketdesk/internal/infrastructure/persistence/models"
	"ticketdesk/internal/shared/db"
	apperrors "ticketdesk/internal/shared/errors"
)

// ticketUpdateColumns are the columns an update may write. reporter_id and
// created_at are fixed at creation.
var ticketUpdateColumns = []string{
	"title", "description", "status", "priority", "severity", "assignee_id", "updated_at",
}

type TicketRepository struct {
	db     *gorm.DB
	mapper mappers.TicketMapper
}

func NewTicketRepository(db *gorm.DB) *TicketRepository {
	return &TicketRepository{
		db:     db,
		mapper: mappers.NewTicketMapper(),
	}
}

func (r *TicketRepository) Save(ctx context.Context, t *ticket.Ticket) error {
	model := r.mapper.ToModel(t)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save ticket: %w", err)
	}

	return t.SetID(model.ID)
}

func (r *TicketRepository) Update(ctx context.Context, t *ticket.Ticket) error {
	model := r.mapper.ToModel(t)
	tx := db.GetTxFromContext(ctx, r.db)

	// Select forces zero values (cleared assignee, empty description) to be written.
	result := tx.
		Model(&models.TicketModel{}).
		Where("id = ?", model.ID).
		Select(ticketUpdateColumns).
		Updates(model)
	if result.Error != nil {
		return fmt.Errorf("failed to update ticket: %w", result.Error)
	}

	return nil
}

// Delete removes the ticket's comments and then the ticket. It owns the
// not-found check: zero affected rows yields a NotFound error. Callers wanting
// both deletes to commit together run it inside a TransactionManager.
func (r *TicketRepository) Delete(ctx context.Context, ticketID uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("ticket_id = ?", ticketID).Delete(&models.CommentModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete ticket comments: %w", err)
	}

	result := tx.Delete(&models.TicketModel{}, ticketID)
	if result.Error != nil {
		return fmt.Errorf("failed to delete ticket: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("ticket not found")
	}
	return nil
}

func (r *TicketRepository) GetByID(ctx context.Context, ticketID uint) (*ticket.Ticket, error) {
	var model models.TicketModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, ticketID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("ticket not found")
		}
		return nil, fmt.Errorf("failed to find ticket: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *TicketRepository) Exists(ctx context.Context, ticketID uint) (bool, error) {
	var count int64
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Model(&models.TicketModel{}).Where("id = ?", ticketID).Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check ticket existence: %w", err)
	}
	return count > 0, nil
}

func (r *TicketRepository) FindAll(ctx context.Context) ([]*ticket.Ticket, error) {
	return r.Search(ctx, ticket.TicketFilter{})
}

func (r *TicketRepository) Search(ctx context.Context, filter ticket.TicketFilter) ([]*ticket.Ticket, error) {
	query := db.GetTxFromContext(ctx, r.db).Model(&models.TicketModel{})

	if filter.Status != nil {
		query = query.Where("status = ?", filter.Status.String())
	}
	if filter.Priority != nil {
		query = query.Where("priority = ?", filter.Priority.String())
	}
	if filter.ReporterID != nil {
		query = query.Where("reporter_id = ?", *filter.ReporterID)
	}

	var ticketModels []models.TicketModel
	if err := query.Order("created_at DESC").Order("id DESC").Find(&ticketModels).Error; err != nil {
		return nil, fmt.Errorf("failed to search tickets: %w", err)
	}

	return r.mapper.ToDomainList(ticketModels)
}
