package http

import (
	ticketUsecases "ticketdesk/internal/application/ticket/usecases"
	"ticketdesk/internal/application/user/usecases"
)

// allUseCases holds all use case instances used by the application.
type allUseCases struct {
	// User / Auth
	registerUC     *usecases.RegisterUserUseCase
	authenticateUC *usecases.AuthenticateUseCase
	listUsersUC    *usecases.ListUsersUseCase

	// Ticket
	createTicketUC *ticketUsecases.CreateTicketUseCase
	updateTicketUC *ticketUsecases.UpdateTicketUseCase
	deleteTicketUC *ticketUsecases.DeleteTicketUseCase
	getTicketUC    *ticketUsecases.GetTicketUseCase
	listTicketsUC  *ticketUsecases.ListTicketsUseCase

	// Comment
	addCommentUC   *ticketUsecases.AddCommentUseCase
	listCommentsUC *ticketUsecases.ListCommentsUseCase
}

func (c *Container) initUseCases() {
	r := c.repos
	c.ucs = &allUseCases{
		registerUC:     usecases.NewRegisterUserUseCase(r.userRepo, r.hasher, c.log),
		authenticateUC: usecases.NewAuthenticateUseCase(r.userRepo, r.hasher, c.log),
		listUsersUC:    usecases.NewListUsersUseCase(r.userRepo, c.log),

		createTicketUC: ticketUsecases.NewCreateTicketUseCase(r.ticketRepo, r.userRepo, c.log),
		updateTicketUC: ticketUsecases.NewUpdateTicketUseCase(r.ticketRepo, r.userRepo, r.txMgr, c.log),
		deleteTicketUC: ticketUsecases.NewDeleteTicketUseCase(r.ticketRepo, r.txMgr, c.log),
		getTicketUC:    ticketUsecases.NewGetTicketUseCase(r.ticketRepo, r.userRepo, c.log),
		listTicketsUC:  ticketUsecases.NewListTicketsUseCase(r.ticketRepo, r.userRepo, c.log),

		addCommentUC:   ticketUsecases.NewAddCommentUseCase(r.ticketRepo, r.commentRepo, r.txMgr, c.log),
		listCommentsUC: ticketUsecases.NewListCommentsUseCase(r.ticketRepo, r.commentRepo, c.log),
	}
}
