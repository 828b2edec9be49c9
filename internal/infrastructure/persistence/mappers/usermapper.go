package mappers

import (
	"fmt"

	"ticketdesk/internal/domain/user"
	"ticketdesk/internal/infrastructure/persistence/models"
	"ticketdesk/internal/shared/biztime"
)

// UserMapper handles conversion between domain entities and persistence models
type UserMapper interface {
	ToDomain(model *models.UserModel) (*user.User, error)
	ToModel(entity *user.User) *models.UserModel
	ToDomainList(models []models.UserModel) ([]*user.User, error)
}

// UserMapperImpl implements the UserMapper interface
type UserMapperImpl struct{}

// NewUserMapper creates a new user mapper
func NewUserMapper() UserMapper {
	return &UserMapperImpl{}
}

func (m *UserMapperImpl) ToDomain(model *models.UserModel) (*user.User, error) {
	if model == nil {
		return nil, nil
	}

	u, err := user.ReconstructUser(
		model.ID,
		model.Username,
		model.Password,
		model.Email,
		model.Role,
		biztime.FromUnixMilli(model.CreatedAt),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct user %d: %w", model.ID, err)
	}
	return u, nil
}

func (m *UserMapperImpl) ToModel(entity *user.User) *models.UserModel {
	if entity == nil {
		return nil
	}

	return &models.UserModel{
		ID:        entity.ID(),
		Username:  entity.Username(),
		Password:  entity.PasswordHash(),
		Email:     entity.Email(),
		Role:      entity.Role(),
		CreatedAt: entity.CreatedAt().UnixMilli(),
	}
}

func (m *UserMapperImpl) ToDomainList(ms []models.UserModel) ([]*user.User, error) {
	result := make([]*user.User, 0, len(ms))
	for i := range ms {
		u, err := m.ToDomain(&ms[i])
		if err != nil {
			return nil, err
		}
		result = append(result, u)
	}
	return result, nil
}
