package usecases

import (
	"context"

	"ticketdesk/internal/domain/ticket"
	"ticketdesk/internal/domain/user"
	"ticketdesk/internal/shared/logger"
)

type mockTicketRepository struct {
	SaveFunc    func(ctx context.Context, t *ticket.Ticket) error
	UpdateFunc  func(ctx context.Context, t *ticket.Ticket) error
	DeleteFunc  func(ctx context.Context, ticketID uint) error
	GetByIDFunc func(ctx context.Context, ticketID uint) (*ticket.Ticket, error)
	ExistsFunc  func(ctx context.Context, ticketID uint) (bool, error)
	FindAllFunc func(ctx context.Context) ([]*ticket.Ticket, error)
	SearchFunc  func(ctx context.Context, filter ticket.TicketFilter) ([]*ticket.Ticket, error)
}

func (m *mockTicketRepository) Save(ctx context.Context, t *ticket.Ticket) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, t)
	}
	return nil
}

func (m *mockTicketRepository) Update(ctx context.Context, t *ticket.Ticket) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, t)
	}
	return nil
}

func (m *mockTicketRepository) Delete(ctx context.Context, ticketID uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, ticketID)
	}
	return nil
}

func (m *mockTicketRepository) GetByID(ctx context.Context, ticketID uint) (*ticket.Ticket, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, ticketID)
	}
	return nil, nil
}

func (m *mockTicketRepository) Exists(ctx context.Context, ticketID uint) (bool, error) {
	if m.ExistsFunc != nil {
		return m.ExistsFunc(ctx, ticketID)
	}
	return true, nil
}

func (m *mockTicketRepository) FindAll(ctx context.Context) ([]*ticket.Ticket, error) {
	if m.FindAllFunc != nil {
		return m.FindAllFunc(ctx)
	}
	return nil, nil
}

func (m *mockTicketRepository) Search(ctx context.Context, filter ticket.TicketFilter) ([]*ticket.Ticket, error) {
	if m.SearchFunc != nil {
		return m.SearchFunc(ctx, filter)
	}
	return nil, nil
}

type mockCommentRepository struct {
	SaveFunc           func(ctx context.Context, comment *ticket.Comment) error
	ListByTicketIDFunc func(ctx context.Context, ticketID uint) ([]*ticket.Comment, error)
}

func (m *mockCommentRepository) Save(ctx context.Context, comment *ticket.Comment) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, comment)
	}
	return nil
}

func (m *mockCommentRepository) ListByTicketID(ctx context.Context, ticketID uint) ([]*ticket.Comment, error) {
	if m.ListByTicketIDFunc != nil {
		return m.ListByTicketIDFunc(ctx, ticketID)
	}
	return nil, nil
}

type mockUserLookup struct {
	GetByIDsFunc func(ctx context.Context, ids []uint) ([]*user.User, error)
}

func (m *mockUserLookup) GetByIDs(ctx context.Context, ids []uint) ([]*user.User, error) {
	if m.GetByIDsFunc != nil {
		return m.GetByIDsFunc(ctx, ids)
	}
	return nil, nil
}

// passthroughTx runs fn directly and counts invocations.
type passthroughTx struct {
	calls int
}

func (p *passthroughTx) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	p.calls++
	return fn(ctx)
}

type mockLogger struct{}

func (m *mockLogger) With(keysAndValues ...any) logger.Interface { return m }
func (m *mockLogger) Infow(msg string, keysAndValues ...any) {}
func (m *mockLogger) Warnw(msg string, keysAndValues ...any) {}
func (m *mockLogger) Errorw(msg string, keysAndValues ...any) {}
