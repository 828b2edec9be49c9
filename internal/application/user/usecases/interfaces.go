package usecases

import (
	"context"

	"ticketdesk/internal/application/user/dto"
)

type RegisterUserExecutor interface {
	Execute(ctx context.Context, cmd RegisterUserCommand) (*dto.UserResponse, error)
}

type AuthenticateExecutor interface {
	Execute(ctx context.Context, cmd AuthenticateCommand) (*dto.LoginResponse, error)
}

type ListUsersExecutor interface {
	Execute(ctx context.Context, query ListUsersQuery) ([]*dto.UserResponse, error)
}
