package user

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/exp/slog"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Create(ctx context.Context, email, passwordHash string) (int, error) {
	args := m.Called(ctx, email, passwordHash)
	return args.Int(0), args.Error(1)
}

func (m *MockRepository) FindByEmail(ctx context.Context, email string) (User, error) {
	args := m.Called(ctx, email)
	return args.Get(0).(User), args.Error(1)
}

func TestService_Register(t *testing.T) {
	t.Run("valid credentials", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo, slog.Default())

		repo.On("Create", mock.Anything, "ana@exemplo.com", mock.MatchedBy(func(hash string) bool {
			// The stored value must be a bcrypt hash of the password, never
			// the password itself.
			return bcrypt.CompareHashAndPassword([]byte(hash), []byte("segredo1")) == nil
		})).Return(7, nil)

		userID, err := svc.Register(context.Background(), "ana@exemplo.com", "segredo1")

		require.NoError(t, err)
		assert.Equal(t, 7, userID)
		repo.AssertExpectations(t)
	})

	t.Run("invalid email", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo, slog.Default())

		_, err := svc.Register(context.Background(), "not-an-email", "segredo1")

		assert.ErrorIs(t, err, ErrInvalidInput)
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("short password", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo, slog.Default())

		_, err := svc.Register(context.Background(), "ana@exemplo.com", "12345")

		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("duplicate email", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo, slog.Default())

		repo.On("Create", mock.Anything, "ana@exemplo.com", mock.Anything).
			Return(0, ErrEmailTaken)

		_, err := svc.Register(context.Background(), "ana@exemplo.com", "segredo1")
		assert.ErrorIs(t, err, ErrEmailTaken)
	})
}

func TestService_Authenticate(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("segredo1"), bcrypt.MinCost)
	require.NoError(t, err)

	stored := User{ID: 7, Email: "ana@exemplo.com", Password: string(hash)}

	t.Run("correct password", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo, slog.Default())

		repo.On("FindByEmail", mock.Anything, "ana@exemplo.com").Return(stored, nil)

		u, err := svc.Authenticate(context.Background(), "ana@exemplo.com", "segredo1")
		require.NoError(t, err)
		assert.Equal(t, 7, u.ID)
	})

	t.Run("wrong password", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo, slog.Default())

		repo.On("FindByEmail", mock.Anything, "ana@exemplo.com").Return(stored, nil)

		_, err := svc.Authenticate(context.Background(), "ana@exemplo.com", "errada")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("unknown email", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo, slog.Default())

		repo.On("FindByEmail", mock.Anything, "nao@exemplo.com").
			Return(User{}, ErrNotFound)

		_, err := svc.Authenticate(context.Background(), "nao@exemplo.com", "segredo1")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})
}
