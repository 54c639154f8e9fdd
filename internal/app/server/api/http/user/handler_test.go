package user

import (
	"context"
	"errors"
	"testing"

	"alunos/internal/app/server/api/http/middleware/auth"
	"alunos/internal/domain/user"

	"github.com/danielgtaylor/huma/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"
)

type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) Register(ctx context.Context, email, password string) (int, error) {
	args := m.Called(ctx, email, password)
	return args.Int(0), args.Error(1)
}

func (m *MockUserService) Authenticate(ctx context.Context, email, password string) (user.User, error) {
	args := m.Called(ctx, email, password)
	return args.Get(0).(user.User), args.Error(1)
}

type MockSessionService struct {
	mock.Mock
}

func (m *MockSessionService) Create(ctx context.Context, userID int) (string, error) {
	args := m.Called(ctx, userID)
	return args.String(0), args.Error(1)
}

func (m *MockSessionService) Validate(ctx context.Context, token string) (int, error) {
	args := m.Called(ctx, token)
	return args.Int(0), args.Error(1)
}

func (m *MockSessionService) Revoke(ctx context.Context, token string) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}

func newTestHandler(svc user.Servicer, sess *MockSessionService) *Handler {
	return NewHandler(svc, sess, slog.Default(), huma.Middlewares{}, huma.Middlewares{})
}

func TestHandler_register(t *testing.T) {
	mockSvc := new(MockUserService)
	mockSvc.On("Register", mock.Anything, "ana@escola.br", "segredo").Return(7, nil)

	h := newTestHandler(mockSvc, new(MockSessionService))
	input := &registerInput{Body: credentials{Email: "ana@escola.br", Password: "segredo"}}

	output, err := h.register(context.Background(), input)

	assert.NoError(t, err)
	assert.Equal(t, 7, output.Body.ID)
	assert.Equal(t, "Ok", output.Body.Status)
}

func TestHandler_register_EmailTaken(t *testing.T) {
	mockSvc := new(MockUserService)
	mockSvc.On("Register", mock.Anything, "ana@escola.br", "segredo").
		Return(0, user.ErrEmailTaken)

	h := newTestHandler(mockSvc, new(MockSessionService))
	input := &registerInput{Body: credentials{Email: "ana@escola.br", Password: "segredo"}}

	_, err := h.register(context.Background(), input)

	assert.Error(t, err)
	var statusErr huma.StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, 409, statusErr.GetStatus())
}

func TestHandler_login(t *testing.T) {
	mockSvc := new(MockUserService)
	mockSvc.On("Authenticate", mock.Anything, "ana@escola.br", "segredo").
		Return(user.User{ID: 7, Email: "ana@escola.br"}, nil)

	mockSess := new(MockSessionService)
	mockSess.On("Create", mock.Anything, 7).Return("token-abc", nil)

	h := newTestHandler(mockSvc, mockSess)
	input := &loginInput{Body: credentials{Email: "ana@escola.br", Password: "segredo"}}

	output, err := h.login(context.Background(), input)

	assert.NoError(t, err)
	assert.Equal(t, "token-abc", output.Body.Token)
	assert.Equal(t, "Ok", output.Body.Status)
}

func TestHandler_login_InvalidCredentials(t *testing.T) {
	mockSvc := new(MockUserService)
	mockSvc.On("Authenticate", mock.Anything, "ana@escola.br", "errada").
		Return(user.User{}, user.ErrInvalidCredentials)

	h := newTestHandler(mockSvc, new(MockSessionService))
	input := &loginInput{Body: credentials{Email: "ana@escola.br", Password: "errada"}}

	_, err := h.login(context.Background(), input)

	var statusErr huma.StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, 401, statusErr.GetStatus())
}

func TestHandler_logout(t *testing.T) {
	mockSess := new(MockSessionService)
	mockSess.On("Revoke", mock.Anything, "token-abc").Return(nil)

	h := newTestHandler(new(MockUserService), mockSess)
	input := &logoutInput{Authorization: "Bearer token-abc"}

	output, err := h.logout(context.Background(), input)

	assert.NoError(t, err)
	assert.Equal(t, "Ok", output.Body.Status)
	mockSess.AssertExpectations(t)
}

func TestHandler_logout_StoreFailure(t *testing.T) {
	mockSess := new(MockSessionService)
	mockSess.On("Revoke", mock.Anything, "token-abc").Return(errors.New("db down"))

	h := newTestHandler(new(MockUserService), mockSess)
	input := &logoutInput{Authorization: "Bearer token-abc"}

	_, err := h.logout(context.Background(), input)

	assert.Error(t, err)
}

func TestHandler_sessionInfo(t *testing.T) {
	h := newTestHandler(new(MockUserService), new(MockSessionService))

	ctx := auth.WithUserID(context.Background(), 7)
	output, err := h.sessionInfo(ctx, &sessionInput{})

	assert.NoError(t, err)
	assert.Equal(t, 7, output.Body.UserID)
}

func TestHandler_sessionInfo_Unauthenticated(t *testing.T) {
	h := newTestHandler(new(MockUserService), new(MockSessionService))

	_, err := h.sessionInfo(context.Background(), &sessionInput{})

	var statusErr huma.StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, 401, statusErr.GetStatus())
}
