package impl

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestPaginate(t *testing.T) {
	skip, take := paginate(0, 20)
	assert.Equal(t, 0, skip)
	assert.Equal(t, 20, take)

	skip, take = paginate(3, 20)
	assert.Equal(t, 60, skip)
	assert.Equal(t, 20, take)

	skip, take = paginate(2, 0)
	assert.Equal(t, 2*defaultPageSize, skip)
	assert.Equal(t, defaultPageSize, take)

	skip, _ = paginate(-1, 10)
	assert.Equal(t, 0, skip)
}

func TestTotalPages(t *testing.T) {
	assert.Equal(t, 1, totalPages(0, 50))
	assert.Equal(t, 1, totalPages(50, 50))
	assert.Equal(t, 3, totalPages(101, 50))
}

func TestRandomToken(t *testing.T) {
	token, err := randomToken(9)
	require.NoError(t, err)
	assert.Len(t, token, 9)
	for _, c := range token {
		assert.Contains(t, referenceCharset, string(c))
	}
}

func TestGenerateOTP(t *testing.T) {
	otp, err := generateOTP()
	require.NoError(t, err)
	require.Len(t, otp, 6)
	for _, c := range otp {
		assert.True(t, c >= '0' && c <= '9')
	}
}
