//POST /user/register          # Cadastro (público, rate limited)
//POST /user/login             # Login (público, rate limited)
//POST /user/logout            # Encerrar sessão (auth)
//GET  /user/session           # Sessão atual (auth)
//GET  /api/v1/alunos          # Listar alunos (auth)
//POST /api/v1/alunos          # Cadastrar aluno (auth)
//PUT  /api/v1/alunos/{id}     # Atualizar aluno (auth)
//DELETE /api/v1/alunos/{id}   # Excluir aluno (auth)

package api

import (
	"context"

	alunoAPI "alunos/internal/app/server/api/http/aluno"
	healthAPI "alunos/internal/app/server/api/http/health"
	"alunos/internal/app/server/api/http/middleware"
	"alunos/internal/app/server/api/http/middleware/auth"
	"alunos/internal/app/server/api/http/middleware/logger"
	"alunos/internal/app/server/api/http/middleware/ratelimit"
	userAPI "alunos/internal/app/server/api/http/user"
	"alunos/internal/app/server/config"
	"alunos/internal/domain/aluno"
	"alunos/internal/domain/session"
	"alunos/internal/domain/user"
	"alunos/internal/infrastructure/storage/postgres"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"golang.org/x/exp/slog"
)

type Handlers struct {
	Health *healthAPI.Handler
	User   *userAPI.Handler
	Aluno  *alunoAPI.Handler
}

// New builds a *chi.Mux with every operation registered through huma.
// ctx bounds the background work of the middlewares (rate limiter janitor).
func New(ctx context.Context, storage *postgres.Storage, cfg *config.Config, log *slog.Logger) *chi.Mux {
	mux := chi.NewMux()

	humaCfg := huma.DefaultConfig("Sistema de Alunos API", "1.0.0")
	humaCfg.Components.SecuritySchemes = map[string]*huma.SecurityScheme{
		"bearer": {Type: "http", Scheme: "bearer"},
	}

	API := humachi.New(mux, humaCfg)

	h := handlers(ctx, storage, cfg, log)
	h.Health.SetupRoutes(API)
	h.User.SetupRoutes(API)
	h.Aluno.SetupRoutes(API)

	return mux
}

func handlers(ctx context.Context, storage *postgres.Storage, cfg *config.Config, log *slog.Logger) *Handlers {
	pool := storage.Pool()

	sessionRepo := postgres.NewSessionRepository(pool, log)
	sessionService := session.NewService(sessionRepo, log)
	authMW := auth.New(sessionService, log)
	loggerMW := logger.New(log)
	limitMW := ratelimit.New(ctx, cfg.Auth.LoginRPS, cfg.Auth.LoginBurst, log)
	middlewares := middleware.NewContainer()

	middlewares.Add(loggerMW.Middleware())
	healthHandler := healthAPI.NewHandler(log, middlewares.GetAllAndClear())

	userRepo := postgres.NewUserRepository(pool, log)
	userService := user.NewService(userRepo, log)
	middlewares.Add(limitMW.Middleware())
	middlewares.Add(loggerMW.Middleware())
	public := middlewares.GetAllAndClear()
	middlewares.Add(authMW.Middleware())
	middlewares.Add(loggerMW.Middleware())
	protected := middlewares.GetAllAndClear()
	userHandler := userAPI.NewHandler(userService, sessionService, log, public, protected)

	alunoRepo := postgres.NewAlunoRepository(pool, log)
	alunoService := aluno.NewService(alunoRepo, log)
	middlewares.Add(authMW.Middleware())
	middlewares.Add(loggerMW.Middleware())
	alunoHandler := alunoAPI.NewHandler(alunoService, log, middlewares.GetAllAndClear())

	return &Handlers{
		Health: healthHandler,
		User:   userHandler,
		Aluno:  alunoHandler,
	}
}
