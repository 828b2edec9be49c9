package http

import (
	"fmt"

	"ticketdesk/internal/interfaces/http/handlers"
	ticketHandlers "ticketdesk/internal/interfaces/http/handlers/ticket"
)

// allHandlers holds all HTTP handler instances used by the application.
type allHandlers struct {
	// User & Auth
	userHandler *handlers.UserHandler
	authHandler *handlers.AuthHandler

	// Ticket & Comment
	ticketHandler *ticketHandlers.TicketHandler

	// System
	healthHandler *handlers.HealthHandler
}

func (c *Container) initHandlers() error {
	sqlDB, err := c.db.DB()
	if err != nil {
		return fmt.Errorf("failed to get sql.DB: %w", err)
	}

	u := c.ucs
	c.hdlrs = &allHandlers{
		userHandler: handlers.NewUserHandler(u.listUsersUC, c.log),
		authHandler: handlers.NewAuthHandler(u.registerUC, u.authenticateUC, c.log),
		ticketHandler: ticketHandlers.NewTicketHandler(
			u.createTicketUC,
			u.updateTicketUC,
			u.deleteTicketUC,
			u.getTicketUC,
			u.listTicketsUC,
			u.addCommentUC,
			u.listCommentsUC,
			c.log,
		),
		healthHandler: handlers.NewHealthHandler(sqlDB, c.log),
	}
	return nil
}
