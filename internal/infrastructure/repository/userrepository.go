package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"ticketdesk/internal/domain/user"
	"ticketdesk/internal/infrastructure/persistence/mappers"
	"ticketdesk/internal/infrastructure/persistence/models"
	"ticketdesk/internal/shared/db"
	apperrors "ticketdesk/internal/shared/errors"
	"ticketdesk/internal/shared/logger"
)

// UserRepository implements user.Repository on GORM
type UserRepository struct {
	db     *gorm.DB
	mapper mappers.UserMapper
	logger logger.Interface
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *gorm.DB, logger logger.Interface) *UserRepository {
	return &UserRepository{
		db:     db,
		mapper: mappers.NewUserMapper(),
		logger: logger,
	}
}

// Create inserts the user; a taken username yields a Conflict error
func (r *UserRepository) Create(ctx context.Context, userEntity *user.User) error {
	model := r.mapper.ToModel(userEntity)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		if apperrors.IsDuplicateError(err) {
			return apperrors.NewConflictError("username already exists", userEntity.Username())
		}
		r.logger.Errorw("failed to create user in database", "error", err)
		return fmt.Errorf("failed to create user: %w", err)
	}

	return userEntity.SetID(model.ID)
}

func (r *UserRepository) GetByID(ctx context.Context, id uint) (*user.User, error) {
	return r.first(ctx, "id = ?", id)
}

func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*user.User, error) {
	return r.first(ctx, "username = ?", username)
}

func (r *UserRepository) GetByIDs(ctx context.Context, ids []uint) ([]*user.User, error) {
	if len(ids) == 0 {
		return []*user.User{}, nil
	}

	var userModels []models.UserModel
	if err := db.GetTxFromContext(ctx, r.db).Where("id IN ?", ids).Find(&userModels).Error; err != nil {
		return nil, fmt.Errorf("failed to get users by IDs: %w", err)
	}

	return r.mapper.ToDomainList(userModels)
}

func (r *UserRepository) ListByRole(ctx context.Context, role string) ([]*user.User, error) {
	var userModels []models.UserModel
	if err := db.GetTxFromContext(ctx, r.db).Where("role = ?", role).Order("id ASC").Find(&userModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list users by role: %w", err)
	}

	return r.mapper.ToDomainList(userModels)
}

func (r *UserRepository) List(ctx context.Context) ([]*user.User, error) {
	var userModels []models.UserModel
	if err := db.GetTxFromContext(ctx, r.db).Order("id ASC").Find(&userModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	return r.mapper.ToDomainList(userModels)
}

func (r *UserRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	var count int64
	if err := db.GetTxFromContext(ctx, r.db).
		Model(&models.UserModel{}).
		Where("username = ?", username).
		Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check username existence: %w", err)
	}
	return count > 0, nil
}

func (r *UserRepository) first(ctx context.Context, query string, arg interface{}) (*user.User, error) {
	var model models.UserModel
	if err := db.GetTxFromContext(ctx, r.db).Where(query, arg).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("user not found")
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return r.mapper.ToDomain(&model)
}
