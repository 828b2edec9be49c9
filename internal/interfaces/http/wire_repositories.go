package http

import (
	"ticketdesk/internal/domain/ticket"
	"ticketdesk/internal/domain/user"
	"ticketdesk/internal/infrastructure/auth"
	"ticketdesk/internal/infrastructure/repository"
	"ticketdesk/internal/shared/db"
)

// repositories holds all repository instances used by the application.
type repositories struct {
	userRepo    user.Repository
	ticketRepo  ticket.TicketRepository
	commentRepo ticket.CommentRepository
	txMgr       *db.TransactionManager
	hasher      user.PasswordHasher
}

func (c *Container) initRepositories() {
	c.repos = &repositories{
		userRepo:    repository.NewUserRepository(c.db, c.log),
		ticketRepo:  repository.NewTicketRepository(c.db),
		commentRepo: repository.NewCommentRepository(c.db),
		txMgr:       db.NewTransactionManager(c.db),
		hasher:      auth.NewBcryptPasswordHasher(c.cfg.Auth.Password.BcryptCost),
	}
}
