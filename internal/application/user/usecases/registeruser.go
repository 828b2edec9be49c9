package usecases

import (
	"context"
	"fmt"

	"ticketdesk/internal/application/user/dto"
	"ticketdesk/internal/domain/user"
	"ticketdesk/internal/shared/errors"
	"ticketdesk/internal/shared/logger"
)

// bcrypt rejects longer input.
const maxPasswordBytes = 72

type RegisterUserCommand struct {
	Username string
	Password string
	Email    string
	Role     string
}

type RegisterUserUseCase struct {
	userRepo       user.Repository
	passwordHasher user.PasswordHasher
	logger         logger.Interface
}

func NewRegisterUserUseCase(
	userRepo user.Repository,
	hasher user.PasswordHasher,
	logger logger.Interface,
) *RegisterUserUseCase {
	return &RegisterUserUseCase{
		userRepo:       userRepo,
		passwordHasher: hasher,
		logger:         logger,
	}
}

func (uc *RegisterUserUseCase) Execute(ctx context.Context, cmd RegisterUserCommand) (*dto.UserResponse, error) {
	if len(cmd.Password) == 0 {
		return nil, errors.NewValidationError("password is required")
	}
	if len(cmd.Password) > maxPasswordBytes {
		return nil, errors.NewValidationError("password must not exceed 72 bytes")
	}

	newUser, err := user.NewUser(cmd.Username, cmd.Email, cmd.Role)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	exists, err := uc.userRepo.ExistsByUsername(ctx, cmd.Username)
	if err != nil {
		uc.logger.Errorw("failed to check username existence", "error", err)
		return nil, fmt.Errorf("failed to check username existence: %w", err)
	}
	if exists {
		return nil, errors.NewConflictError("username already exists", cmd.Username)
	}

	if err := newUser.SetPassword(cmd.Password, uc.passwordHasher); err != nil {
		uc.logger.Errorw("failed to set password", "error", err)
		return nil, fmt.Errorf("failed to set password: %w", err)
	}

	// Create reports a Conflict when a concurrent registration wins the race.
	if err := uc.userRepo.Create(ctx, newUser); err != nil {
		if !errors.IsConflictError(err) {
			uc.logger.Errorw("failed to create user", "username", cmd.Username, "error", err)
		}
		return nil, err
	}

	uc.logger.Infow("user registered", "user_id", newUser.ID(), "username", newUser.Username())
	return dto.ToUserResponse(newUser), nil
}
