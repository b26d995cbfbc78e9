package mappers

import (
	"flowdesk/internal/domain/user"
	"flowdesk/internal/infrastructure/persistence/models"
)

// UserMapper handles the conversion between user domain entities and persistence models.
type UserMapper interface {
	ToModel(u *user.User) *models.UserModel
	ToDomain(model *models.UserModel) (*user.User, error)
}

type userMapper struct{}

// NewUserMapper creates a new UserMapper.
func NewUserMapper() UserMapper {
	return &userMapper{}
}

func (m *userMapper) ToModel(u *user.User) *models.UserModel {
	return &models.UserModel{
		ID:           u.ID(),
		Email:        u.Email(),
		Username:     u.Username(),
		PasswordHash: u.PasswordHash(),
		FullName:     u.FullName(),
		Role:         u.Role().String(),
		IsActive:     u.IsActive(),
		CreatedAt:    u.CreatedAt().UnixMilli(),
		UpdatedAt:    u.UpdatedAt().UnixMilli(),
	}
}

func (m *userMapper) ToDomain(model *models.UserModel) (*user.User, error) {
	role, err := user.NewRole(model.Role)
	if err != nil {
		return nil, err
	}

	return user.ReconstructUser(
		model.ID,
		model.Email,
		model.Username,
		model.PasswordHash,
		model.FullName,
		role,
		model.IsActive,
		millisToTime(model.CreatedAt),
		millisToTime(model.UpdatedAt),
	)
}
