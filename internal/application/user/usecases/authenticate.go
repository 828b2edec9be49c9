package usecases

import (
	"context"
	"fmt"

	"ticketdesk/internal/application/user/dto"
	"ticketdesk/internal/domain/user"
	"ticketdesk/internal/shared/errors"
	"ticketdesk/internal/shared/logger"
)

type AuthenticateCommand struct {
	Username string
	Password string
}

// timingPassword is hashed once so unknown usernames still pay for a Verify.
const timingPassword = "ticketdesk-timing-equalizer"

type AuthenticateUseCase struct {
	userRepo       user.Repository
	passwordHasher user.PasswordHasher
	dummyHash      string
	logger         logger.Interface
}

func NewAuthenticateUseCase(
	userRepo user.Repository,
	hasher user.PasswordHasher,
	logger logger.Interface,
) *AuthenticateUseCase {
	dummyHash, err := hasher.Hash(timingPassword)
	if err != nil {
		logger.Warnw("failed to prepare dummy password hash", "error", err)
	}
	return &AuthenticateUseCase{
		userRepo:       userRepo,
		passwordHasher: hasher,
		dummyHash:      dummyHash,
		logger:         logger,
	}
}

// Execute returns the same error for an unknown username and a wrong password.
func (uc *AuthenticateUseCase) Execute(ctx context.Context, cmd AuthenticateCommand) (*dto.LoginResponse, error) {
	existingUser, err := uc.userRepo.GetByUsername(ctx, cmd.Username)
	if err != nil {
		if errors.IsNotFoundError(err) {
			_ = uc.passwordHasher.Verify(cmd.Password, uc.dummyHash)
			uc.logger.Infow("login rejected", "username", cmd.Username)
			return nil, errors.NewInvalidCredentialsError()
		}
		uc.logger.Errorw("failed to get user by username", "error", err)
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	if !existingUser.VerifyPassword(cmd.Password, uc.passwordHasher) {
		uc.logger.Infow("login rejected", "username", cmd.Username)
		return nil, errors.NewInvalidCredentialsError()
	}

	uc.logger.Infow("user logged in", "user_id", existingUser.ID())
	return dto.ToLoginResponse(existingUser), nil
}
