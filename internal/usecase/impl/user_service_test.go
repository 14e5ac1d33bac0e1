package impl

import (
	"context"
	"testing"
	"time"

	"buytrek/internal/domain/entity"
	domainerrors "buytrek/internal/domain/errors"
	"buytrek/internal/domain/repository"
	mockRepo "buytrek/internal/mocks/repository"
	mockSvc "buytrek/internal/mocks/service"
	"buytrek/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type userServiceFixture struct {
	service      *userService
	userRepo     *mockRepo.MockUserRepository
	hasher       *mockSvc.MockPasswordHasher
	tokenService *mockSvc.MockTokenService
	sessionStore *mockSvc.MockSessionStore
	otpStore     *mockSvc.MockOTPStore
}

func newUserServiceFixture(t *testing.T) *userServiceFixture {
	userRepo := mockRepo.NewMockUserRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenService := mockSvc.NewMockTokenService(t)
	sessionStore := mockSvc.NewMockSessionStore(t)
	otpStore := mockSvc.NewMockOTPStore(t)

	service := NewUserService(UserServiceParams{
		UserRepo:     userRepo,
		Hasher:       hasher,
		TokenService: tokenService,
		SessionStore: sessionStore,
		OTPStore:     otpStore,
		Logger:       newDiscardLogger(),
	})

	return &userServiceFixture{
		service:      service.(*userService),
		userRepo:     userRepo,
		hasher:       hasher,
		tokenService: tokenService,
		sessionStore: sessionStore,
		otpStore:     otpStore,
	}
}

func TestUserService_Register_Success(t *testing.T) {
	f := newUserServiceFixture(t)
	ctx := context.Background()

	f.userRepo.EXPECT().FindByEmail(ctx, "buyer@example.com").Return(nil, repository.ErrUserNotFound)
	f.hasher.EXPECT().Hash("s3cretpass").Return("hashed", nil)
	f.userRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.User")).
		Run(func(ctx context.Context, user *entity.User) {
			assert.Equal(t, "buyer@example.com", user.Email)
			assert.Equal(t, "hashed", user.PasswordHash)
			assert.Equal(t, entity.RoleBuyer, user.Role)
			assert.False(t, user.Activated)
			user.ID = uuid.New()
		}).
		Return(nil)
	f.otpStore.EXPECT().SetOTP(ctx, mock.AnythingOfType("string"), mock.AnythingOfType("string"), defaultOTPTTL).Return(nil)

	output, err := f.service.Register(ctx, &usecase.RegisterInput{Email: "buyer@example.com", Password: "s3cretpass"})

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, output.UserID)
}

func TestUserService_Register_SellerRole(t *testing.T) {
	f := newUserServiceFixture(t)
	ctx := context.Background()

	f.userRepo.EXPECT().FindByEmail(ctx, "seller@example.com").Return(nil, repository.ErrUserNotFound)
	f.hasher.EXPECT().Hash("s3cretpass").Return("hashed", nil)
	f.userRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.User")).
		Run(func(ctx context.Context, user *entity.User) {
			assert.Equal(t, entity.RoleSeller, user.Role)
		}).
		Return(nil)
	f.otpStore.EXPECT().SetOTP(ctx, mock.AnythingOfType("string"), mock.AnythingOfType("string"), defaultOTPTTL).Return(nil)

	_, err := f.service.Register(ctx, &usecase.RegisterInput{Email: "seller@example.com", Password: "s3cretpass", Role: "seller"})

	require.NoError(t, err)
}

func TestUserService_Register_EmailTaken(t *testing.T) {
	f := newUserServiceFixture(t)
	ctx := context.Background()

	f.userRepo.EXPECT().FindByEmail(ctx, "buyer@example.com").
		Return(&entity.User{ID: uuid.New(), Email: "buyer@example.com"}, nil)

	_, err := f.service.Register(ctx, &usecase.RegisterInput{Email: "buyer@example.com", Password: "s3cretpass"})

	assert.ErrorIs(t, err, domainerrors.ErrEmailRegistered)
}

func TestUserService_Register_UnknownRole(t *testing.T) {
	f := newUserServiceFixture(t)
	ctx := context.Background()

	f.userRepo.EXPECT().FindByEmail(ctx, "buyer@example.com").Return(nil, repository.ErrUserNotFound)
	f.hasher.EXPECT().Hash("s3cretpass").Return("hashed", nil)

	_, err := f.service.Register(ctx, &usecase.RegisterInput{Email: "buyer@example.com", Password: "s3cretpass", Role: "superuser"})

	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestUserService_ActivateAccount_Success(t *testing.T) {
	f := newUserServiceFixture(t)
	ctx := context.Background()
	userID := uuid.New()
	user := &entity.User{ID: userID, Email: "buyer@example.com"}

	f.otpStore.EXPECT().ConsumeOTP(ctx, userID.String(), "123456").Return(true, nil)
	f.userRepo.EXPECT().FindByID(ctx, userID).Return(user, nil)
	f.userRepo.EXPECT().Update(ctx, user).Return(nil)

	err := f.service.ActivateAccount(ctx, &usecase.ActivateAccountInput{UserID: userID, OTP: "123456"})

	require.NoError(t, err)
	assert.True(t, user.Activated)
}

func TestUserService_ActivateAccount_InvalidOTP(t *testing.T) {
	f := newUserServiceFixture(t)
	ctx := context.Background()
	userID := uuid.New()

	f.otpStore.EXPECT().ConsumeOTP(ctx, userID.String(), "000000").Return(false, nil)

	err := f.service.ActivateAccount(ctx, &usecase.ActivateAccountInput{UserID: userID, OTP: "000000"})

	assert.ErrorIs(t, err, domainerrors.ErrInvalidOTP)
}

func TestUserService_ActivateAccount_AlreadyActivated(t *testing.T) {
	f := newUserServiceFixture(t)
	ctx := context.Background()
	userID := uuid.New()

	f.otpStore.EXPECT().ConsumeOTP(ctx, userID.String(), "123456").Return(true, nil)
	f.userRepo.EXPECT().FindByID(ctx, userID).
		Return(&entity.User{ID: userID, Activated: true}, nil)

	err := f.service.ActivateAccount(ctx, &usecase.ActivateAccountInput{UserID: userID, OTP: "123456"})

	require.NoError(t, err)
}

func TestUserService_ResendOTP_InactiveAccount(t *testing.T) {
	f := newUserServiceFixture(t)
	ctx := context.Background()
	userID := uuid.New()

	f.userRepo.EXPECT().FindByID(ctx, userID).
		Return(&entity.User{ID: userID, Email: "buyer@example.com"}, nil)
	f.otpStore.EXPECT().SetOTP(ctx, userID.String(), mock.AnythingOfType("string"), defaultOTPTTL).Return(nil)

	err := f.service.ResendOTP(ctx, &usecase.ResendOTPInput{UserID: userID})

	require.NoError(t, err)
}

func TestUserService_ResendOTP_ActivatedIsNoop(t *testing.T) {
	f := newUserServiceFixture(t)
	ctx := context.Background()
	userID := uuid.New()

	f.userRepo.EXPECT().FindByID(ctx, userID).
		Return(&entity.User{ID: userID, Activated: true}, nil)

	err := f.service.ResendOTP(ctx, &usecase.ResendOTPInput{UserID: userID})

	require.NoError(t, err)
}

func TestUserService_Login_Success(t *testing.T) {
	f := newUserServiceFixture(t)
	ctx := context.Background()
	userID := uuid.New()
	expiresAt := time.Now().Add(24 * time.Hour)
	user := &entity.User{
		ID:           userID,
		Email:        "buyer@example.com",
		PasswordHash: "hashed",
		Activated:    true,
		Role:         entity.RoleBuyer,
	}

	f.userRepo.EXPECT().FindByEmail(ctx, "buyer@example.com").Return(user, nil)
	f.hasher.EXPECT().Check("s3cretpass", "hashed").Return(true)
	f.tokenService.EXPECT().GenerateAccessToken(userID, entity.RoleBuyer).Return("token-abc", expiresAt, nil)
	f.tokenService.EXPECT().AccessTokenDuration().Return(24 * time.Hour)
	f.sessionStore.EXPECT().SaveAccessToken(ctx, userID.String(), "token-abc", 24*time.Hour).Return(nil)

	output, err := f.service.Login(ctx, &usecase.LoginInput{Email: "buyer@example.com", Password: "s3cretpass"})

	require.NoError(t, err)
	assert.Equal(t, "token-abc", output.AccessToken)
	assert.Equal(t, expiresAt.Format(time.RFC3339), output.ExpiresAt)
	assert.Equal(t, "buyer", output.Role)
}

func TestUserService_Login_UnknownEmail(t *testing.T) {
	f := newUserServiceFixture(t)
	ctx := context.Background()

	f.userRepo.EXPECT().FindByEmail(ctx, "ghost@example.com").Return(nil, repository.ErrUserNotFound)

	_, err := f.service.Login(ctx, &usecase.LoginInput{Email: "ghost@example.com", Password: "s3cretpass"})

	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestUserService_Login_WrongPassword(t *testing.T) {
	f := newUserServiceFixture(t)
	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Email: "buyer@example.com", PasswordHash: "hashed", Activated: true}

	f.userRepo.EXPECT().FindByEmail(ctx, "buyer@example.com").Return(user, nil)
	f.hasher.EXPECT().Check("wrong", "hashed").Return(false)

	_, err := f.service.Login(ctx, &usecase.LoginInput{Email: "buyer@example.com", Password: "wrong"})

	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestUserService_Login_InactiveAccount(t *testing.T) {
	f := newUserServiceFixture(t)
	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Email: "buyer@example.com", PasswordHash: "hashed"}

	f.userRepo.EXPECT().FindByEmail(ctx, "buyer@example.com").Return(user, nil)
	f.hasher.EXPECT().Check("s3cretpass", "hashed").Return(true)

	_, err := f.service.Login(ctx, &usecase.LoginInput{Email: "buyer@example.com", Password: "s3cretpass"})

	assert.ErrorIs(t, err, domainerrors.ErrAccountNotActivated)
}

func TestUserService_Logout_RevokesSession(t *testing.T) {
	f := newUserServiceFixture(t)
	ctx := context.Background()
	principal := buyerPrincipal()

	f.sessionStore.EXPECT().DeleteAccessToken(ctx, principal.UserID.String()).Return(nil)

	err := f.service.Logout(ctx, principal)

	require.NoError(t, err)
}

func TestUserService_InitiatePasswordReset_UnknownEmail(t *testing.T) {
	f := newUserServiceFixture(t)
	ctx := context.Background()

	f.userRepo.EXPECT().FindByEmail(ctx, "ghost@example.com").Return(nil, repository.ErrUserNotFound)

	err := f.service.InitiatePasswordReset(ctx, &usecase.InitiatePasswordResetInput{Email: "ghost@example.com"})

	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestUserService_CompletePasswordReset_Success(t *testing.T) {
	f := newUserServiceFixture(t)
	ctx := context.Background()
	userID := uuid.New()
	user := &entity.User{ID: userID, Email: "buyer@example.com", PasswordHash: "old-hash", Activated: true}

	f.otpStore.EXPECT().ConsumeOTP(ctx, userID.String(), "123456").Return(true, nil)
	f.userRepo.EXPECT().FindByID(ctx, userID).Return(user, nil)
	f.hasher.EXPECT().Hash("newpassword").Return("new-hash", nil)
	f.userRepo.EXPECT().Update(ctx, user).Return(nil)
	f.sessionStore.EXPECT().DeleteAccessToken(ctx, userID.String()).Return(nil)

	err := f.service.CompletePasswordReset(ctx, &usecase.CompletePasswordResetInput{UserID: userID, OTP: "123456", Password: "newpassword"})

	require.NoError(t, err)
	assert.Equal(t, "new-hash", user.PasswordHash)
}

func TestUserService_CompletePasswordReset_InvalidOTP(t *testing.T) {
	f := newUserServiceFixture(t)
	ctx := context.Background()
	userID := uuid.New()

	f.otpStore.EXPECT().ConsumeOTP(ctx, userID.String(), "000000").Return(false, nil)

	err := f.service.CompletePasswordReset(ctx, &usecase.CompletePasswordResetInput{UserID: userID, OTP: "000000", Password: "newpassword"})

	assert.ErrorIs(t, err, domainerrors.ErrInvalidOTP)
}

func TestUserService_CreateProfile_Success(t *testing.T) {
	f := newUserServiceFixture(t)
	ctx := context.Background()
	principal := buyerPrincipal()
	user := &entity.User{ID: principal.UserID, Email: "buyer@example.com"}

	f.userRepo.EXPECT().FindByID(ctx, principal.UserID).Return(user, nil)
	f.userRepo.EXPECT().SaveProfile(ctx, &entity.UserProfile{
		UserID:    principal.UserID,
		FirstName: "Ada",
		LastName:  "Obi",
	}).Return(nil)

	err := f.service.CreateProfile(ctx, principal, &usecase.CreateProfileInput{FirstName: "Ada", LastName: "Obi"})

	require.NoError(t, err)
}
