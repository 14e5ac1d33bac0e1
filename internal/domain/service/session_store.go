package service

import (
	"context"
	"time"
)

// SessionStore caches issued access tokens keyed by user. A token is only
// accepted while its cached copy matches, so logout revokes immediately
// even though the JWT itself stays valid until expiry.
type SessionStore interface {
	// SaveAccessToken stores the user's current access token with a TTL.
	SaveAccessToken(ctx context.Context, userID string, token string, ttl time.Duration) error

	// GetAccessToken returns the cached token, or "" if none is cached.
	GetAccessToken(ctx context.Context, userID string) (string, error)

	// DeleteAccessToken drops the cached token, revoking the session.
	DeleteAccessToken(ctx context.Context, userID string) error
}

// OTPStore holds short-lived one-time passwords for account activation and
// password reset. Setting a new OTP replaces any outstanding one.
type OTPStore interface {
	// SetOTP stores the OTP for a user with a TTL.
	SetOTP(ctx context.Context, userID string, otp string, ttl time.Duration) error

	// ConsumeOTP checks the submitted OTP against the stored one and deletes
	// it on match. Returns false for missing, expired or mismatched OTPs.
	ConsumeOTP(ctx context.Context, userID string, otp string) (bool, error)
}
