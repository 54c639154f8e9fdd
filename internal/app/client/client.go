package client

import (
	"context"
	"errors"
	"fmt"
	gosync "sync"

	"alunos/internal/app/client/config"
	"alunos/internal/domain/aluno"

	"golang.org/x/exp/slog"
)

// ErrNoSession is returned when an operation requires a login first.
var ErrNoSession = errors.New("nenhuma sessão ativa, faça login primeiro")

type App struct {
	config        *config.Config
	log           *slog.Logger
	httpClient    *httpClient
	tokens        *TokenStore
	authenticated bool
	mu            gosync.RWMutex
}

func New(cfg *config.Config, log *slog.Logger) (*App, error) {
	httpCl, err := NewHTTPClient(cfg, log)
	if err != nil {
		return nil, fmt.Errorf("erro ao inicializar cliente HTTP: %w", err)
	}

	tokens, err := NewTokenStore(cfg.TokenDBPath)
	if err != nil {
		return nil, fmt.Errorf("erro ao inicializar armazenamento de sessão: %w", err)
	}

	app := &App{
		config:     cfg,
		log:        log,
		httpClient: httpCl,
		tokens:     tokens,
	}

	// Resume a saved session if there is one.
	if token, err := tokens.Load(); err == nil && token != "" {
		httpCl.SetToken(token)
		app.authenticated = true
		log.Debug("session token loaded")
	}

	return app, nil
}

func (a *App) Close() error {
	return a.tokens.Close()
}

func (a *App) IsAuthenticated() bool {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.authenticated
}

// RequireSession guards the aluno operations. Every command that touches
// records calls it before doing anything else.
func (a *App) RequireSession() error {
	if !a.IsAuthenticated() {
		return ErrNoSession
	}
	return nil
}

func (a *App) CheckConnection(ctx context.Context) error {
	return a.httpClient.HealthCheck(ctx)
}

func (a *App) Register(ctx context.Context, email, password string) error {
	return a.httpClient.Register(ctx, email, password)
}

// Login authenticates on the server and persists the session token.
func (a *App) Login(ctx context.Context, email, password string) error {
	token, err := a.httpClient.Login(ctx, email, password)
	if err != nil {
		return err
	}

	if err := a.tokens.Save(token); err != nil {
		return fmt.Errorf("erro ao salvar token: %w", err)
	}

	a.mu.Lock()
	a.authenticated = true
	a.mu.Unlock()

	return nil
}

// Logout revokes the session on the server and clears the local token. The
// local token is cleared even when the server call fails.
func (a *App) Logout(ctx context.Context) error {
	serverErr := a.httpClient.Logout(ctx)

	if err := a.tokens.Clear(); err != nil {
		return fmt.Errorf("erro ao remover token: %w", err)
	}

	a.mu.Lock()
	a.authenticated = false
	a.mu.Unlock()
	a.httpClient.SetToken("")

	return serverErr
}

func (a *App) ListAlunos(ctx context.Context) ([]aluno.Aluno, error) {
	if err := a.RequireSession(); err != nil {
		return nil, err
	}

	alunos, err := a.httpClient.ListAlunos(ctx)
	if err != nil {
		return nil, a.checkSession(err)
	}
	return alunos, nil
}

func (a *App) CreateAluno(ctx context.Context, p aluno.Payload) (*aluno.Aluno, error) {
	if err := a.RequireSession(); err != nil {
		return nil, err
	}

	created, err := a.httpClient.CreateAluno(ctx, p)
	if err != nil {
		return nil, a.checkSession(err)
	}
	return created, nil
}

func (a *App) UpdateAluno(ctx context.Context, id string, p aluno.Payload) (*aluno.Aluno, error) {
	if err := a.RequireSession(); err != nil {
		return nil, err
	}

	updated, err := a.httpClient.UpdateAluno(ctx, id, p)
	if err != nil {
		return nil, a.checkSession(err)
	}
	return updated, nil
}

func (a *App) DeleteAluno(ctx context.Context, id string) error {
	if err := a.RequireSession(); err != nil {
		return err
	}

	if err := a.httpClient.DeleteAluno(ctx, id); err != nil {
		return a.checkSession(err)
	}
	return nil
}

// checkSession drops the stored token when the server rejected it, so the
// next command asks the user to log in again instead of failing the same way.
func (a *App) checkSession(err error) error {
	if errors.Is(err, ErrNoSession) {
		a.dropSession()
	}
	return err
}

func (a *App) dropSession() {
	if err := a.tokens.Clear(); err != nil {
		a.log.Warn("failed to clear stale token", "error", err)
	}

	a.mu.Lock()
	a.authenticated = false
	a.mu.Unlock()
	a.httpClient.SetToken("")
}
