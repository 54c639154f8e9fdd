package aluno

import (
	"context"
	"errors"

	"alunos/internal/app/server/api/http/middleware/auth"
	"alunos/internal/domain/aluno"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"
)

type Handler struct {
	service    aluno.Servicer
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(service aluno.Servicer, log *slog.Logger, mws huma.Middlewares) *Handler {
	return &Handler{
		service:    service,
		log:        log,
		middleware: mws,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.listOp(), h.list)
	huma.Register(api, h.createOp(), h.create)
	huma.Register(api, h.updateOp(), h.update)
	huma.Register(api, h.deleteOp(), h.delete)
}

func (h *Handler) list(ctx context.Context, _ *listInput) (*listOutput, error) {
	userID, ok := auth.GetUserID(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	alunos, err := h.service.List(ctx, userID)
	if err != nil {
		h.log.Error("list alunos failed", "error", err)
		return nil, huma.Error500InternalServerError("Erro ao carregar alunos")
	}

	return &listOutput{
		Body: listResponse{Alunos: alunos, Total: len(alunos)},
	}, nil
}

func (h *Handler) create(ctx context.Context, input *createInput) (*alunoOutput, error) {
	userID, ok := auth.GetUserID(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	a, err := h.service.Create(ctx, userID, input.Body.toPayload())
	if err != nil {
		return nil, h.mapError(err)
	}

	return &alunoOutput{Body: *a}, nil
}

func (h *Handler) update(ctx context.Context, input *updateInput) (*alunoOutput, error) {
	userID, ok := auth.GetUserID(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	a, err := h.service.Update(ctx, userID, input.ID, input.Body.toPayload())
	if err != nil {
		return nil, h.mapError(err)
	}

	return &alunoOutput{Body: *a}, nil
}

func (h *Handler) delete(ctx context.Context, input *deleteInput) (*statusOutput, error) {
	userID, ok := auth.GetUserID(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	if err := h.service.Delete(ctx, userID, input.ID); err != nil {
		return nil, h.mapError(err)
	}

	return &statusOutput{
		Body: statusResponse{Status: "Ok"},
	}, nil
}

// mapError translates domain errors into HTTP status errors. Validation
// failures carry the user-facing message verbatim.
func (h *Handler) mapError(err error) error {
	var vErr *aluno.ValidationError
	switch {
	case errors.As(err, &vErr):
		return huma.Error422UnprocessableEntity(vErr.Message)
	case errors.Is(err, aluno.ErrNotFound):
		return huma.Error404NotFound("Aluno não encontrado")
	default:
		h.log.Error("aluno operation failed", "error", err)
		return huma.Error500InternalServerError("Erro ao salvar")
	}
}
