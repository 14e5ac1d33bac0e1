package impl

import (
	"context"
	"crypto/rand"
	"log/slog"
	"math/big"

	"buytrek/internal/domain/service"
)

const (
	defaultPageSize  = 50
	referenceCharset = "abcdefghijklmnopqrstuvwxyz0123456789"
)

// paginate converts a 0-based page request into skip/take, applying the
// default page size.
func paginate(page, size int) (skip, take int) {
	if size <= 0 {
		size = defaultPageSize
	}
	if page < 0 {
		page = 0
	}

	return page * size, size
}

// totalPages derives the page count for a listing.
func totalPages(total int64, size int) int {
	if size <= 0 {
		size = defaultPageSize
	}

	pages := int((total + int64(size) - 1) / int64(size))
	if pages < 1 {
		pages = 1
	}

	return pages
}

// randomToken returns n random characters from the lowercase alphanumeric
// charset, used for order numbers and transaction references.
func randomToken(n int) (string, error) {
	max := big.NewInt(int64(len(referenceCharset)))
	token := make([]byte, n)
	for i := range token {
		idx, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		token[i] = referenceCharset[idx.Int64()]
	}

	return string(token), nil
}

// generateOTP returns a 6-digit one-time password.
func generateOTP() (string, error) {
	max := big.NewInt(1000000)
	n, err := rand.Int(rand.Reader, max)
	if err != nil {
		return "", err
	}

	digits := make([]byte, 6)
	v := n.Int64()
	for i := 5; i >= 0; i-- {
		digits[i] = byte('0' + v%10)
		v /= 10
	}

	return string(digits), nil
}

// dispatch sends a notification without blocking the calling operation.
// Delivery failures are logged and never surface to the caller. The parent
// context's values (request id, logger) are kept but its cancellation is
// detached so an already-answered request does not abort the send.
func dispatch(ctx context.Context, logger *slog.Logger, notifier service.Notifier, event service.NotificationEvent, recipients []string, data map[string]any) {
	if notifier == nil || len(recipients) == 0 {
		return
	}

	detached := context.WithoutCancel(ctx)
	go func() {
		if err := notifier.Send(detached, event, recipients, data); err != nil {
			logger.Warn("Failed to send notification",
				slog.String("event", string(event)),
				slog.Int("recipients", len(recipients)),
				slog.Any("error", err))
		}
	}()
}
