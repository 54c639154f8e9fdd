package session

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Create(ctx context.Context, userID int, tokenHash string, expiresAt time.Time) error {
	args := m.Called(ctx, userID, tokenHash, expiresAt)
	return args.Error(0)
}

func (m *MockRepository) Validate(ctx context.Context, tokenHash string) (int, error) {
	args := m.Called(ctx, tokenHash)
	return args.Int(0), args.Error(1)
}

func (m *MockRepository) Delete(ctx context.Context, tokenHash string) error {
	args := m.Called(ctx, tokenHash)
	return args.Error(0)
}

func TestService_CreateAndValidate(t *testing.T) {
	repo := new(MockRepository)
	svc := NewService(repo, slog.Default())

	var storedHash string
	repo.On("Create", mock.Anything, 42, mock.MatchedBy(func(hash string) bool {
		storedHash = hash
		// sha256 hex digest, never the raw token
		return len(hash) == 64
	}), mock.Anything).Return(nil)

	token, err := svc.Create(context.Background(), 42)
	require.NoError(t, err)
	require.NotEmpty(t, token)
	assert.NotEqual(t, token, storedHash)

	repo.On("Validate", mock.Anything, storedHash).Return(42, nil)

	userID, err := svc.Validate(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, 42, userID)
}

func TestService_Validate_UnknownToken(t *testing.T) {
	repo := new(MockRepository)
	svc := NewService(repo, slog.Default())

	repo.On("Validate", mock.Anything, mock.Anything).Return(0, ErrInvalidSession)

	_, err := svc.Validate(context.Background(), "forged-token")
	assert.ErrorIs(t, err, ErrInvalidSession)
}

func TestService_Revoke(t *testing.T) {
	repo := new(MockRepository)
	svc := NewService(repo, slog.Default())

	repo.On("Delete", mock.Anything, mock.MatchedBy(func(hash string) bool {
		return len(hash) == 64
	})).Return(nil)

	err := svc.Revoke(context.Background(), "some-token")
	assert.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestService_TokensAreUnique(t *testing.T) {
	repo := new(MockRepository)
	svc := NewService(repo, slog.Default())

	repo.On("Create", mock.Anything, 1, mock.Anything, mock.Anything).Return(nil)

	a, err := svc.Create(context.Background(), 1)
	require.NoError(t, err)
	b, err := svc.Create(context.Background(), 1)
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
}
