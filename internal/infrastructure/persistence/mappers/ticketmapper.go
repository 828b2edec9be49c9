package mappers

import (
	"fmt"

	"ticketdesk/internal/domain/ticket"
	vo "ticketdesk/internal/domain/ticket/valueobjects"
	"ticketdesk/internal/infrastructure/persistence/models"
	"ticketdesk/internal/shared/biztime"
)

// TicketMapper handles the conversion between Ticket domain entities and persistence models.
type TicketMapper interface {
	// ToModel converts a ticket domain entity to a persistence model.
	ToModel(t *ticket.Ticket) *models.TicketModel

	// ToDomain converts a ticket persistence model to a domain entity.
	ToDomain(model *models.TicketModel) (*ticket.Ticket, error)

	// ToDomainList converts ticket persistence models to domain entities.
	ToDomainList(models []models.TicketModel) ([]*ticket.Ticket, error)

	// CommentToModel converts a comment domain entity to a persistence model.
	CommentToModel(c *ticket.Comment) *models.CommentModel

	// CommentToDomain converts a comment persistence model to a domain entity.
	CommentToDomain(model *models.CommentModel) (*ticket.Comment, error)

	// CommentsToDomain converts comment persistence models to domain entities.
	CommentsToDomain(models []models.CommentModel) ([]*ticket.Comment, error)
}

// TicketMapperImpl is the concrete implementation of TicketMapper.
type TicketMapperImpl struct{}

// NewTicketMapper creates a new TicketMapper.
func NewTicketMapper() TicketMapper {
	return &TicketMapperImpl{}
}

func (m *TicketMapperImpl) ToModel(t *ticket.Ticket) *models.TicketModel {
	return &models.TicketModel{
		ID:          t.ID(),
		Title:       t.Title(),
		Description: t.Description(),
		Status:      t.Status().String(),
		Priority:    t.Priority().String(),
		Severity:    t.Severity().String(),
		ReporterID:  t.ReporterID(),
		AssigneeID:  t.AssigneeID(),
		CreatedAt:   t.CreatedAt().UnixMilli(),
		UpdatedAt:   t.UpdatedAt().UnixMilli(),
	}
}

func (m *TicketMapperImpl) ToDomain(model *models.TicketModel) (*ticket.Ticket, error) {
	if model == nil {
		return nil, nil
	}

	t, err := ticket.ReconstructTicket(
		model.ID,
		model.Title,
		model.Description,
		vo.TicketStatus(model.Status),
		vo.Priority(model.Priority),
		vo.Severity(model.Severity),
		model.ReporterID,
		model.AssigneeID,
		biztime.FromUnixMilli(model.CreatedAt),
		biztime.FromUnixMilli(model.UpdatedAt),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct ticket %d: %w", model.ID, err)
	}
	return t, nil
}

func (m *TicketMapperImpl) ToDomainList(ms []models.TicketModel) ([]*ticket.Ticket, error) {
	result := make([]*ticket.Ticket, 0, len(ms))
	for i := range ms {
		t, err := m.ToDomain(&ms[i])
		if err != nil {
			return nil, err
		}
		result = append(result, t)
	}
	return result, nil
}

func (m *TicketMapperImpl) CommentToModel(c *ticket.Comment) *models.CommentModel {
	return &models.CommentModel{
		ID:         c.ID(),
		TicketID:   c.TicketID(),
		Content:    c.Content(),
		AuthorID:   c.AuthorID(),
		AuthorName: c.AuthorName(),
		CreatedAt:  c.CreatedAt().UnixMilli(),
	}
}

func (m *TicketMapperImpl) CommentToDomain(model *models.CommentModel) (*ticket.Comment, error) {
	if model == nil {
		return nil, nil
	}

	c, err := ticket.ReconstructComment(
		model.ID,
		model.TicketID,
		model.Content,
		model.AuthorID,
		model.AuthorName,
		biztime.FromUnixMilli(model.CreatedAt),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct comment %d: %w", model.ID, err)
	}
	return c, nil
}

func (m *TicketMapperImpl) CommentsToDomain(ms []models.CommentModel) ([]*ticket.Comment, error) {
	result := make([]*ticket.Comment, 0, len(ms))
	for i := range ms {
		c, err := m.CommentToDomain(&ms[i])
		if err != nil {
			return nil, err
		}
		result = append(result, c)
	}
	return result, nil
}
