package ticket

import (
	"context"

	vo "ticketdesk/internal/domain/ticket/valueobjects"
)

type TicketRepository interface {
	Save(ctx context.Context, ticket *Ticket) error
	Update(ctx context.Context, ticket *Ticket) error
	// Delete removes the ticket together with every comment attached to it.
	Delete(ctx context.Context, ticketID uint) error
	GetByID(ctx context.Context, ticketID uint) (*Ticket, error)
	Exists(ctx context.Context, ticketID uint) (bool, error)
	FindAll(ctx context.Context) ([]*Ticket, error)
	// Search returns tickets matching every non-nil filter field, newest first.
	Search(ctx context.Context, filter TicketFilter) ([]*Ticket, error)
}

type TicketFilter struct {
	Status     *vo.TicketStatus
	Priority   *vo.Priority
	ReporterID *uint
}

func (f TicketFilter) IsEmpty() bool {
	return f.Status == nil && f.Priority == nil && f.ReporterID == nil
}

type CommentRepository interface {
	Save(ctx context.Context, comment *Comment) error
	// ListByTicketID returns comments oldest first.
	ListByTicketID(ctx context.Context, ticketID uint) ([]*Comment, error)
}
