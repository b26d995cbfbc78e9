package usecases

import (
	"context"

	"flowdesk/internal/application/user/dto"
	"flowdesk/internal/domain/user"
	"flowdesk/internal/shared/errors"
	"flowdesk/internal/shared/logger"
)

type LoginCommand struct {
	Email    string
	Password string
}

type LoginResult struct {
	Token dto.TokenDTO
	User  dto.UserDTO
}

type LoginUseCase struct {
	userRepo user.UserRepository
	hasher   PasswordHasher
	issuer   TokenIssuer
	logger   logger.Interface
}

func NewLoginUseCase(
	userRepo user.UserRepository,
	hasher PasswordHasher,
	issuer TokenIssuer,
	logger logger.Interface,
) *LoginUseCase {
	return &LoginUseCase{
		userRepo: userRepo,
		hasher:   hasher,
		issuer:   issuer,
		logger:   logger,
	}
}

func (uc *LoginUseCase) Execute(ctx context.Context, cmd LoginCommand) (*LoginResult, error) {
	u, err := uc.userRepo.GetByEmail(ctx, cmd.Email)
	if err != nil {
		if errors.IsNotFound(err) {
			// Same response as a wrong password, so probes cannot tell
			// registered emails apart.
			return nil, errors.NewUnauthorizedError("invalid credentials")
		}
		return nil, err
	}

	if !u.IsActive() {
		return nil, errors.NewUnauthorizedError("account is deactivated")
	}

	if err := uc.hasher.Compare(u.PasswordHash(), cmd.Password); err != nil {
		return nil, errors.NewUnauthorizedError("invalid credentials")
	}

	token, expiresIn, err := uc.issuer.Generate(u.ID(), u.Role().String())
	if err != nil {
		uc.logger.Errorw("failed to issue access token", "user_id", u.ID(), "error", err)
		return nil, errors.NewInternalError("failed to issue token")
	}

	uc.logger.Infow("user logged in", "user_id", u.ID())

	return &LoginResult{
		Token: dto.TokenDTO{
			AccessToken: token,
			TokenType:   "bearer",
			ExpiresIn:   expiresIn,
		},
		User: *toUserDTO(u),
	}, nil
}
