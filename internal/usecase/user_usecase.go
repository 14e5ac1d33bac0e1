// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"buytrek/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// RegisterInput defines the data required to create an account.
type RegisterInput struct {
	Email    string `json:"emailAddress" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Role     string `json:"role" validate:"omitempty,oneof=buyer seller"`
}

// ActivateAccountInput carries the OTP submitted to activate an account.
type ActivateAccountInput struct {
	UserID uuid.UUID `json:"userId" validate:"required"`
	OTP    string    `json:"otp" validate:"required,len=6"`
}

// ResendOTPInput requests a fresh activation OTP.
type ResendOTPInput struct {
	UserID uuid.UUID `json:"userId" validate:"required"`
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string `json:"emailAddress" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// InitiatePasswordResetInput starts a password reset by email.
type InitiatePasswordResetInput struct {
	Email string `json:"emailAddress" validate:"required,email"`
}

// CompletePasswordResetInput finishes a password reset with the mailed OTP.
type CompletePasswordResetInput struct {
	UserID   uuid.UUID `json:"userId" validate:"required"`
	OTP      string    `json:"otp" validate:"required,len=6"`
	Password string    `json:"password" validate:"required,min=8"`
}

// CreateProfileInput sets the user's display names.
type CreateProfileInput struct {
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName" validate:"required"`
}

// --- Output DTOs ---

// RegisterOutput returns the newly created user's id; the activation OTP
// travels by mail, never in the response.
type RegisterOutput struct {
	UserID uuid.UUID `json:"userId"`
}

// LoginOutput returns the issued access token.
type LoginOutput struct {
	AccessToken string `json:"accessToken"`
	ExpiresAt   string `json:"expiresAt"`
	Role        string `json:"role"`
}

// UserUsecase defines the interface for account-related business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type UserUsecase interface {
	Register(ctx context.Context, input *RegisterInput) (*RegisterOutput, error)
	ActivateAccount(ctx context.Context, input *ActivateAccountInput) error
	ResendOTP(ctx context.Context, input *ResendOTPInput) error
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)
	Logout(ctx context.Context, principal entity.Principal) error
	InitiatePasswordReset(ctx context.Context, input *InitiatePasswordResetInput) error
	CompletePasswordReset(ctx context.Context, input *CompletePasswordResetInput) error
	CreateProfile(ctx context.Context, principal entity.Principal, input *CreateProfileInput) error
}
