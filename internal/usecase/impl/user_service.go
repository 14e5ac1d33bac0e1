// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"time"

	"buytrek/config"
	deliverycontext "buytrek/internal/delivery/context"
	"buytrek/internal/domain/entity"
	domainerrors "buytrek/internal/domain/errors"
	"buytrek/internal/domain/repository"
	"buytrek/internal/domain/service"
	"buytrek/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	defaultAccessTokenTTL = 24 * time.Hour
	defaultOTPTTL         = 5 * time.Minute
)

// userService implements the UserUsecase interface.
type userService struct {
	userRepo     repository.UserRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	sessionStore service.SessionStore
	otpStore     service.OTPStore
	notifier     service.Notifier
	otpTTL       time.Duration
	logger       *slog.Logger
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	UserRepo     repository.UserRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	SessionStore service.SessionStore
	OTPStore     service.OTPStore
	Notifier     service.Notifier
	Config       *config.Config
	Logger       *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	otpTTL := defaultOTPTTL
	if params.Config != nil && params.Config.Auth != nil && params.Config.Auth.OTPTTL > 0 {
		otpTTL = params.Config.Auth.OTPTTL
	}

	return &userService{
		userRepo:     params.UserRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		sessionStore: params.SessionStore,
		otpStore:     params.OTPStore,
		notifier:     params.Notifier,
		otpTTL:       otpTTL,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates an inactive account and mails an activation OTP.
func (srv *userService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	srv.log(ctx).Info("Starting registration", slog.String("email", input.Email))

	existing, err := srv.userRepo.FindByEmail(ctx, input.Email)
	if err != nil && !errors.Is(err, repository.ErrUserNotFound) {
		return nil, errors.Wrap(err, "failed to check existing email")
	}
	if existing != nil {
		srv.log(ctx).Warn("Registration with registered email", slog.String("email", input.Email))

		return nil, errors.Wrap(domainerrors.ErrEmailRegistered, "registration failed")
	}

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash password during registration")
	}

	role := entity.RoleBuyer
	if input.Role != "" {
		parsed, ok := entity.RoleFromString(input.Role)
		if !ok {
			return nil, errors.Wrap(domainerrors.ErrValidationFailed, "unknown role")
		}
		role = parsed
	}

	newUser := &entity.User{
		Email:        input.Email,
		PasswordHash: hashedPassword,
		Activated:    false,
		Role:         role,
	}
	if err := srv.userRepo.Create(ctx, newUser); err != nil {
		return nil, errors.Wrap(err, "failed to create user during registration")
	}

	if err := srv.issueOTP(ctx, newUser, service.EventVerifyRegistration); err != nil {
		// Account exists; the user can request a fresh OTP via resend.
		srv.log(ctx).Error("Failed to issue activation OTP", slog.Any("userID", newUser.ID), slog.Any("error", err))
	}

	srv.log(ctx).Debug("Registration completed", slog.Any("userID", newUser.ID), slog.Any("role", role))

	return &usecase.RegisterOutput{UserID: newUser.ID}, nil
}

// issueOTP generates a fresh OTP, caches it and mails it to the user.
func (srv *userService) issueOTP(ctx context.Context, user *entity.User, event service.NotificationEvent) error {
	otp, err := generateOTP()
	if err != nil {
		return errors.Wrap(err, "failed to generate OTP")
	}

	if err := srv.otpStore.SetOTP(ctx, user.ID.String(), otp, srv.otpTTL); err != nil {
		return errors.Wrap(err, "failed to store OTP")
	}

	dispatch(ctx, srv.log(ctx), srv.notifier, event, []string{user.Email}, map[string]any{
		"name": user.FirstNameOrEmail(),
		"otp":  otp,
	})

	return nil
}

// ActivateAccount consumes the activation OTP and unlocks the account.
func (srv *userService) ActivateAccount(ctx context.Context, input *usecase.ActivateAccountInput) error {
	ok, err := srv.otpStore.ConsumeOTP(ctx, input.UserID.String(), input.OTP)
	if err != nil {
		return errors.Wrap(err, "failed to check activation OTP")
	}
	if !ok {
		srv.log(ctx).Warn("Activation with invalid OTP", slog.Any("userID", input.UserID))

		return errors.Wrap(domainerrors.ErrInvalidOTP, "account activation failed")
	}

	user, err := srv.userRepo.FindByID(ctx, input.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return errors.Wrap(domainerrors.ErrUserNotFound, "account activation failed")
		}

		return errors.Wrap(err, "failed to load user for activation")
	}

	if user.Activated {
		return nil
	}

	user.Activated = true
	if err := srv.userRepo.Update(ctx, user); err != nil {
		return errors.Wrap(err, "failed to activate user")
	}

	dispatch(ctx, srv.log(ctx), srv.notifier, service.EventAccountActivated, []string{user.Email}, map[string]any{
		"name": user.FirstNameOrEmail(),
	})
	srv.log(ctx).Info("Account activated", slog.Any("userID", user.ID))

	return nil
}

// ResendOTP issues a fresh activation OTP for a not-yet-activated account.
func (srv *userService) ResendOTP(ctx context.Context, input *usecase.ResendOTPInput) error {
	user, err := srv.userRepo.FindByID(ctx, input.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return errors.Wrap(domainerrors.ErrUserNotFound, "resend OTP failed")
		}

		return errors.Wrap(err, "failed to load user for OTP resend")
	}

	if user.Activated {
		return nil
	}

	if err := srv.issueOTP(ctx, user, service.EventVerifyRegistration); err != nil {
		return errors.Wrap(err, "failed to resend activation OTP")
	}

	return nil
}

// Login verifies credentials, requires an activated account and issues an
// access token whose cached copy backs session revocation.
func (srv *userService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	srv.log(ctx).Debug("Starting user login", slog.String("email", input.Email))

	user, err := srv.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
		}

		return nil, errors.Wrap(err, "failed to load user for login")
	}

	// bcrypt is CPU-bound; checked before any further I/O.
	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.log(ctx).Warn("Login failed", slog.String("email", input.Email), slog.Any("error", domainerrors.ErrInvalidCredentials))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
	}

	if !user.Activated {
		srv.log(ctx).Warn("Login on inactive account", slog.Any("userID", user.ID))

		return nil, errors.Wrap(domainerrors.ErrAccountNotActivated, "login failed")
	}

	accessToken, expiresAt, err := srv.tokenService.GenerateAccessToken(user.ID, user.Role)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate access token")
	}

	ttl := srv.tokenService.AccessTokenDuration()
	if ttl <= 0 {
		ttl = defaultAccessTokenTTL
	}
	if err := srv.sessionStore.SaveAccessToken(ctx, user.ID.String(), accessToken, ttl); err != nil {
		return nil, errors.Wrap(err, "failed to store session token")
	}

	srv.log(ctx).Debug("User logged in successfully", slog.Any("userID", user.ID))

	return &usecase.LoginOutput{
		AccessToken: accessToken,
		ExpiresAt:   expiresAt.Format(time.RFC3339),
		Role:        user.Role.String(),
	}, nil
}

// Logout drops the cached session token, revoking the caller's session.
func (srv *userService) Logout(ctx context.Context, principal entity.Principal) error {
	if err := srv.sessionStore.DeleteAccessToken(ctx, principal.UserID.String()); err != nil {
		srv.log(ctx).Error("Failed to delete session token", slog.Any("userID", principal.UserID), slog.Any("error", err))

		return errors.Wrap(err, "failed to delete session token")
	}
	srv.log(ctx).Info("Successfully logged out", slog.Any("userID", principal.UserID))

	return nil
}

// InitiatePasswordReset mails a reset OTP to the account's address.
func (srv *userService) InitiatePasswordReset(ctx context.Context, input *usecase.InitiatePasswordResetInput) error {
	user, err := srv.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return errors.Wrap(domainerrors.ErrUserNotFound, "password reset failed")
		}

		return errors.Wrap(err, "failed to load user for password reset")
	}

	if err := srv.issueOTP(ctx, user, service.EventPasswordResetOTP); err != nil {
		return errors.Wrap(err, "failed to issue password reset OTP")
	}
	srv.log(ctx).Info("Password reset initiated", slog.Any("userID", user.ID))

	return nil
}

// CompletePasswordReset consumes the reset OTP, replaces the password hash
// and revokes any live session.
func (srv *userService) CompletePasswordReset(ctx context.Context, input *usecase.CompletePasswordResetInput) error {
	ok, err := srv.otpStore.ConsumeOTP(ctx, input.UserID.String(), input.OTP)
	if err != nil {
		return errors.Wrap(err, "failed to check password reset OTP")
	}
	if !ok {
		srv.log(ctx).Warn("Password reset with invalid OTP", slog.Any("userID", input.UserID))

		return errors.Wrap(domainerrors.ErrInvalidOTP, "password reset failed")
	}

	user, err := srv.userRepo.FindByID(ctx, input.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return errors.Wrap(domainerrors.ErrUserNotFound, "password reset failed")
		}

		return errors.Wrap(err, "failed to load user for password reset")
	}

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return errors.Wrap(err, "failed to hash new password")
	}

	user.PasswordHash = hashedPassword
	if err := srv.userRepo.Update(ctx, user); err != nil {
		return errors.Wrap(err, "failed to update password")
	}

	// The old credential is gone; drop the session issued with it.
	if err := srv.sessionStore.DeleteAccessToken(ctx, user.ID.String()); err != nil {
		srv.log(ctx).Warn("Failed to revoke session after password reset", slog.Any("userID", user.ID), slog.Any("error", err))
	}

	dispatch(ctx, srv.log(ctx), srv.notifier, service.EventPasswordResetComplete, []string{user.Email}, map[string]any{
		"name": user.FirstNameOrEmail(),
	})
	srv.log(ctx).Info("Password reset completed", slog.Any("userID", user.ID))

	return nil
}

// CreateProfile sets the caller's display names.
func (srv *userService) CreateProfile(ctx context.Context, principal entity.Principal, input *usecase.CreateProfileInput) error {
	user, err := srv.userRepo.FindByID(ctx, principal.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return errors.Wrap(domainerrors.ErrUserNotFound, "profile creation failed")
		}

		return errors.Wrap(err, "failed to load user for profile creation")
	}

	profile := &entity.UserProfile{
		UserID:    user.ID,
		FirstName: input.FirstName,
		LastName:  input.LastName,
	}
	if err := srv.userRepo.SaveProfile(ctx, profile); err != nil {
		return errors.Wrap(err, "failed to save profile")
	}
	srv.log(ctx).Debug("Profile saved", slog.Any("userID", user.ID))

	return nil
}
