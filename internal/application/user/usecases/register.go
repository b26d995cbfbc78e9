package usecases

import (
	"context"

	"flowdesk/internal/application/user/dto"
	"flowdesk/internal/domain/user"
	"flowdesk/internal/shared/errors"
	"flowdesk/internal/shared/logger"
)

type RegisterUserCommand struct {
	Email    string
	Username string
	Password string
	FullName string
	Role     string
}

type RegisterUserUseCase struct {
	userRepo user.UserRepository
	hasher   PasswordHasher
	logger   logger.Interface
}

func NewRegisterUserUseCase(
	userRepo user.UserRepository,
	hasher PasswordHasher,
	logger logger.Interface,
) *RegisterUserUseCase {
	return &RegisterUserUseCase{
		userRepo: userRepo,
		hasher:   hasher,
		logger:   logger,
	}
}

func (uc *RegisterUserUseCase) Execute(ctx context.Context, cmd RegisterUserCommand) (*dto.UserDTO, error) {
	uc.logger.Infow("executing register user use case", "email", cmd.Email, "username", cmd.Username)

	if len(cmd.Password) < 8 {
		return nil, errors.NewValidationError("password must be at least 8 characters")
	}

	// Self-service registration always produces a regular user; elevated
	// roles are assigned out of band.
	role := user.RoleUser
	if cmd.Role != "" {
		parsed, err := user.NewRole(cmd.Role)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		role = parsed
	}

	if existing, err := uc.userRepo.GetByEmail(ctx, cmd.Email); err == nil && existing != nil {
		return nil, errors.NewConflictError("email already registered")
	} else if err != nil && !errors.IsNotFound(err) {
		return nil, err
	}

	if existing, err := uc.userRepo.GetByUsername(ctx, cmd.Username); err == nil && existing != nil {
		return nil, errors.NewConflictError("username already taken")
	} else if err != nil && !errors.IsNotFound(err) {
		return nil, err
	}

	hash, err := uc.hasher.Hash(cmd.Password)
	if err != nil {
		uc.logger.Errorw("failed to hash password", "error", err)
		return nil, errors.NewInternalError("failed to process password")
	}

	newUser, err := user.NewUser(cmd.Email, cmd.Username, hash, cmd.FullName, role)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.userRepo.Save(ctx, newUser); err != nil {
		uc.logger.Errorw("failed to save user", "email", cmd.Email, "error", err)
		return nil, err
	}

	uc.logger.Infow("user registered successfully", "user_id", newUser.ID())

	return toUserDTO(newUser), nil
}

func toUserDTO(u *user.User) *dto.UserDTO {
	return &dto.UserDTO{
		ID:        u.ID(),
		Email:     u.Email(),
		Username:  u.Username(),
		FullName:  u.FullName(),
		Role:      u.Role().String(),
		IsActive:  u.IsActive(),
		CreatedAt: u.CreatedAt(),
	}
}
