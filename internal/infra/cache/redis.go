// Package cache implements the session and OTP stores on Redis.
package cache

import (
	"context"
	"log/slog"
	"time"

	"buytrek/config"
	"buytrek/internal/domain/lifecycle"
	"buytrek/internal/domain/service"
	"buytrek/internal/errors"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

const (
	sessionKeyPrefix = "session:"
	otpKeyPrefix     = "otp:"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// NewClient creates the shared Redis client with lifecycle management.
func NewClient(params Params) (*redis.Client, error) {
	if params.Config.Redis == nil {
		return nil, errors.New("redis config must be provided")
	}

	client := redis.NewClient(&redis.Options{
		Addr:     params.Config.Redis.Addr,
		Password: params.Config.Redis.Password,
		DB:       params.Config.Redis.DB,
	})

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := client.Ping(ctx).Err(); err != nil {
				return errors.Wrap(err, "failed to ping Redis")
			}

			return nil
		},
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})

	return client, nil
}

// redisSessionStore implements service.SessionStore on Redis.
type redisSessionStore struct {
	client *redis.Client
}

// NewSessionStore is the constructor for redisSessionStore.
func NewSessionStore(client *redis.Client) service.SessionStore {
	return &redisSessionStore{client: client}
}

// SaveAccessToken stores the user's current access token with a TTL.
func (s *redisSessionStore) SaveAccessToken(ctx context.Context, userID string, token string, ttl time.Duration) error {
	if err := s.client.Set(ctx, sessionKeyPrefix+userID, token, ttl).Err(); err != nil {
		return errors.Wrap(err, "failed to save access token")
	}

	return nil
}

// GetAccessToken returns the cached token, or "" if none is cached.
func (s *redisSessionStore) GetAccessToken(ctx context.Context, userID string) (string, error) {
	token, err := s.client.Get(ctx, sessionKeyPrefix+userID).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", nil
		}

		return "", errors.Wrap(err, "failed to get access token")
	}

	return token, nil
}

// DeleteAccessToken drops the cached token, revoking the session.
func (s *redisSessionStore) DeleteAccessToken(ctx context.Context, userID string) error {
	if err := s.client.Del(ctx, sessionKeyPrefix+userID).Err(); err != nil {
		return errors.Wrap(err, "failed to delete access token")
	}

	return nil
}

// redisOTPStore implements service.OTPStore on Redis.
type redisOTPStore struct {
	client *redis.Client
}

// NewOTPStore is the constructor for redisOTPStore.
func NewOTPStore(client *redis.Client) service.OTPStore {
	return &redisOTPStore{client: client}
}

// SetOTP stores the OTP for a user with a TTL, replacing any outstanding one.
func (s *redisOTPStore) SetOTP(ctx context.Context, userID string, otp string, ttl time.Duration) error {
	if err := s.client.Set(ctx, otpKeyPrefix+userID, otp, ttl).Err(); err != nil {
		return errors.Wrap(err, "failed to store OTP")
	}

	return nil
}

// ConsumeOTP checks the submitted OTP against the stored one and deletes it
// on match. A mismatch leaves the stored OTP in place so a typo does not
// burn the code.
func (s *redisOTPStore) ConsumeOTP(ctx context.Context, userID string, otp string) (bool, error) {
	stored, err := s.client.Get(ctx, otpKeyPrefix+userID).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}

		return false, errors.Wrap(err, "failed to read OTP")
	}

	if stored != otp {
		return false, nil
	}

	if err := s.client.Del(ctx, otpKeyPrefix+userID).Err(); err != nil {
		return false, errors.Wrap(err, "failed to consume OTP")
	}

	return true, nil
}
