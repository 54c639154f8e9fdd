package aluno

import (
	"context"
	"errors"
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

func (m *MockRepository) List(ctx context.Context, userID int) ([]Aluno, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Aluno), args.Error(1)
}

func (m *MockRepository) Get(ctx context.Context, userID int, alunoID string) (*Aluno, error) {
	args := m.Called(ctx, userID, alunoID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Aluno), args.Error(1)
}

func (m *MockRepository) Create(ctx context.Context, a *Aluno) error {
	args := m.Called(ctx, a)
	if args.Error(0) == nil {
		a.ID = "7b4a7a36-66d0-4cbd-8e1b-9f3f0bdcbdbd"
		a.CreatedAt = time.Now()
	}
	return args.Error(0)
}

func (m *MockRepository) Update(ctx context.Context, a *Aluno) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *MockRepository) Delete(ctx context.Context, userID int, alunoID string) error {
	args := m.Called(ctx, userID, alunoID)
	return args.Error(0)
}

func validPayload() Payload {
	return Payload{
		Nome:  "Ana Silva",
		Email: "ana@exemplo.com",
		Curso: "Engenharia de Software",
		Idade: 20,
	}
}

func TestService_Create(t *testing.T) {
	userID := 42

	t.Run("valid payload is persisted with the acting owner", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo, slog.Default())

		repo.On("Create", mock.Anything, mock.MatchedBy(func(a *Aluno) bool {
			return a.UserID == userID && a.Nome == "Ana Silva" && a.Idade == 20
		})).Return(nil)

		created, err := svc.Create(context.Background(), userID, validPayload())

		require.NoError(t, err)
		assert.NotEmpty(t, created.ID)
		assert.Equal(t, userID, created.UserID)
		repo.AssertExpectations(t)
	})

	t.Run("invalid payload never reaches the repository", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo, slog.Default())

		p := validPayload()
		p.Nome = "A"

		_, err := svc.Create(context.Background(), userID, p)

		var vErr *ValidationError
		require.ErrorAs(t, err, &vErr)
		assert.Equal(t, "Nome deve ter no mínimo 2 caracteres", vErr.Message)
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("store failure is surfaced", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo, slog.Default())

		repo.On("Create", mock.Anything, mock.Anything).
			Return(errors.New("connection refused"))

		_, err := svc.Create(context.Background(), userID, validPayload())
		assert.Error(t, err)
	})
}

func TestService_Update(t *testing.T) {
	userID := 42
	alunoID := "3f2e0a39-9f6e-4a59-b1be-62cf6f8a44a2"

	t.Run("editable fields change, id and owner do not", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo, slog.Default())

		existing := &Aluno{
			ID:     alunoID,
			Nome:   "Ana Silva",
			Email:  "ana@exemplo.com",
			Curso:  "Direito",
			Idade:  20,
			UserID: userID,
		}
		repo.On("Get", mock.Anything, userID, alunoID).Return(existing, nil)
		repo.On("Update", mock.Anything, mock.MatchedBy(func(a *Aluno) bool {
			return a.ID == alunoID && a.UserID == userID && a.Curso == "Medicina"
		})).Return(nil)

		p := validPayload()
		p.Curso = "Medicina"

		updated, err := svc.Update(context.Background(), userID, alunoID, p)

		require.NoError(t, err)
		assert.Equal(t, alunoID, updated.ID)
		assert.Equal(t, userID, updated.UserID)
		assert.Equal(t, "Medicina", updated.Curso)
		repo.AssertExpectations(t)
	})

	t.Run("unknown record", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo, slog.Default())

		repo.On("Get", mock.Anything, userID, alunoID).Return(nil, ErrNotFound)

		_, err := svc.Update(context.Background(), userID, alunoID, validPayload())
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("invalid payload never reaches the repository", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo, slog.Default())

		p := validPayload()
		p.Email = "bad-email"

		_, err := svc.Update(context.Background(), userID, alunoID, p)

		var vErr *ValidationError
		require.ErrorAs(t, err, &vErr)
		assert.Equal(t, "Email inválido", vErr.Message)
		repo.AssertNotCalled(t, "Get", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestService_Delete(t *testing.T) {
	userID := 42
	alunoID := "3f2e0a39-9f6e-4a59-b1be-62cf6f8a44a2"

	t.Run("success", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo, slog.Default())

		repo.On("Delete", mock.Anything, userID, alunoID).Return(nil)

		err := svc.Delete(context.Background(), userID, alunoID)
		assert.NoError(t, err)
		repo.AssertExpectations(t)
	})

	t.Run("unknown record", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo, slog.Default())

		repo.On("Delete", mock.Anything, userID, alunoID).Return(ErrNotFound)

		err := svc.Delete(context.Background(), userID, alunoID)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestService_List(t *testing.T) {
	userID := 42

	t.Run("returns owned records", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo, slog.Default())

		repo.On("List", mock.Anything, userID).Return([]Aluno{
			{ID: "2", Nome: "Bruno Costa", UserID: userID},
			{ID: "1", Nome: "Ana Silva", UserID: userID},
		}, nil)

		alunos, err := svc.List(context.Background(), userID)
		require.NoError(t, err)
		assert.Len(t, alunos, 2)
	})

	t.Run("store failure is surfaced", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo, slog.Default())

		repo.On("List", mock.Anything, userID).Return(nil, errors.New("timeout"))

		_, err := svc.List(context.Background(), userID)
		assert.Error(t, err)
	})
}
