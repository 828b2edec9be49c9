package usecases

import (
	"context"
	"errors"

	"github.com/stretchr/testify/mock"

	"ticketdesk/internal/domain/user"
	"ticketdesk/internal/shared/logger"
)

type mockUserRepository struct {
	mock.Mock
}

func (m *mockUserRepository) Create(ctx context.Context, u *user.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *mockUserRepository) GetByID(ctx context.Context, id uint) (*user.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}

func (m *mockUserRepository) GetByIDs(ctx context.Context, ids []uint) ([]*user.User, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*user.User), args.Error(1)
}

func (m *mockUserRepository) GetByUsername(ctx context.Context, username string) (*user.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}

func (m *mockUserRepository) ListByRole(ctx context.Context, role string) ([]*user.User, error) {
	args := m.Called(ctx, role)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*user.User), args.Error(1)
}

func (m *mockUserRepository) List(ctx context.Context) ([]*user.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*user.User), args.Error(1)
}

func (m *mockUserRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	args := m.Called(ctx, username)
	return args.Bool(0), args.Error(1)
}

// recordingHasher counts Verify calls and checks which hash each one saw.
type recordingHasher struct {
	prefixHasher
	verified []string
}

func (h *recordingHasher) Verify(password, hash string) error {
	h.verified = append(h.verified, hash)
	return h.prefixHasher.Verify(password, hash)
}

// prefixHasher stores "hashed:" + password.
type prefixHasher struct{}

func (prefixHasher) Hash(password string) (string, error) {
	return "hashed:" + password, nil
}

func (prefixHasher) Verify(password, hash string) error {
	if hash != "hashed:"+password {
		return errors.New("password mismatch")
	}
	return nil
}

type mockLogger struct {
	mock.Mock
}

func (m *mockLogger) With(keysAndValues ...any) logger.Interface { return m }
func (m *mockLogger) Infow(msg string, keysAndValues ...any) {}
func (m *mockLogger) Warnw(msg string, keysAndValues ...any) {}

func (m *mockLogger) Errorw(msg string, keysAndValues ...any) {
	m.Called(msg, keysAndValues)
}
