package impl

import (
	"context"
	"log/slog"

	"wishlist/internal/domain/entity"
	domainerrors "wishlist/internal/domain/errors"
	"wishlist/internal/domain/repository"
	"wishlist/internal/domain/service"
	"wishlist/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// userService implements the UserUsecase interface.
type userService struct {
	fx.In

	txManager      repository.TransactionManager
	passwordHasher service.PasswordHasher
	tokenService   service.TokenService
	logger         *slog.Logger
}

// NewUserService is the constructor for userService.
func NewUserService(
	txManager repository.TransactionManager,
	passwordHasher service.PasswordHasher,
	tokenService service.TokenService,
	logger *slog.Logger,
) usecase.UserUsecase {
	return &userService{
		txManager:      txManager,
		passwordHasher: passwordHasher,
		tokenService:   tokenService,
		logger:         logger,
	}
}

// Register creates a new account from the given input. The email must not
// already be taken and the password must satisfy the configured strength
// requirements.
func (srv *userService) Register(ctx context.Context, input *usecase.RegisterInput) (*entity.User, error) {
	srv.logger.Debug("Registering user", "email", input.Email)

	user, err := entity.NewUser(input.Email, input.FirstName)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, err.Error())
	}

	if err := srv.passwordHasher.ValidatePasswordStrength(input.Password); err != nil {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, err.Error())
	}

	hash, err := srv.passwordHasher.Hash(input.Password)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrPasswordHashFailed, err.Error())
	}
	user.PasswordHash = hash
	user.LastName = input.LastName
	user.Gender = entity.Gender(input.Gender)

	birthday, err := parseDate(input.Birthday)
	if err != nil {
		return nil, err
	}
	user.Birthday = birthday

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		if _, err := userRepo.FindByEmail(ctx, user.Email); err == nil {
			return errors.WithStack(domainerrors.ErrUserAlreadyExists)
		} else if !errors.Is(err, repository.ErrUserNotFound) {
			return errors.Wrap(err, "failed to check for existing user")
		}

		if err := userRepo.Create(ctx, user); err != nil {
			return errors.Wrap(domainerrors.ErrUserCreationFailed, err.Error())
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.logger.Info("User registered", "userID", user.ID, "email", user.Email)

	return user, nil
}

// Login verifies the given credentials and issues a token pair. Unknown
// emails, wrong passwords and deactivated accounts all produce the same
// error so that a caller cannot probe which addresses are registered.
func (srv *userService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	var user *entity.User

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.UserRepo().FindByEmail(ctx, input.Email)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return errors.WithStack(domainerrors.ErrInvalidCredentials)
			}

			return errors.Wrap(err, "failed to find user")
		}
		user = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	if !user.IsActive {
		return nil, errors.WithStack(domainerrors.ErrInvalidCredentials)
	}

	if !srv.passwordHasher.Check(input.Password, user.PasswordHash) {
		return nil, errors.WithStack(domainerrors.ErrInvalidCredentials)
	}

	accessToken, refreshToken, err := srv.tokenService.GenerateTokens(user.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate tokens")
	}

	srv.logger.Info("User logged in", "userID", user.ID)

	return &usecase.LoginOutput{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    int64(srv.tokenService.GetRefreshTokenDuration().Seconds()),
	}, nil
}

// RefreshToken exchanges a valid refresh token for a fresh token pair.
func (srv *userService) RefreshToken(ctx context.Context, input *usecase.RefreshTokenInput) (*usecase.LoginOutput, error) {
	claims, err := srv.tokenService.ValidateRefreshToken(input.RefreshToken)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrTokenInvalid, err.Error())
	}

	var user *entity.User

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.UserRepo().FindByID(ctx, claims.UserID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return errors.WithStack(domainerrors.ErrTokenInvalid)
			}

			return errors.Wrap(err, "failed to find user")
		}
		user = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	if !user.IsActive {
		return nil, errors.WithStack(domainerrors.ErrTokenInvalid)
	}

	accessToken, refreshToken, err := srv.tokenService.GenerateTokens(user.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate tokens")
	}

	return &usecase.LoginOutput{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    int64(srv.tokenService.GetRefreshTokenDuration().Seconds()),
	}, nil
}
