package usecases

import (
	"context"
	"fmt"

	"ticketdesk/internal/application/user/dto"
	"ticketdesk/internal/domain/user"
	"ticketdesk/internal/shared/logger"
)

// ListUsersQuery narrows the listing to one exact role when Role is non-empty.
type ListUsersQuery struct {
	Role string
}

type ListUsersUseCase struct {
	userRepo user.Repository
	logger   logger.Interface
}

func NewListUsersUseCase(userRepo user.Repository, logger logger.Interface) *ListUsersUseCase {
	return &ListUsersUseCase{
		userRepo: userRepo,
		logger:   logger,
	}
}

func (uc *ListUsersUseCase) Execute(ctx context.Context, query ListUsersQuery) ([]*dto.UserResponse, error) {
	var (
		users []*user.User
		err   error
	)
	if query.Role != "" {
		users, err = uc.userRepo.ListByRole(ctx, query.Role)
	} else {
		users, err = uc.userRepo.List(ctx)
	}
	if err != nil {
		uc.logger.Errorw("failed to list users", "role", query.Role, "error", err)
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	return dto.ToUserResponses(users), nil
}
