package aluno

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) listOp() huma.Operation {
	return huma.Operation{
		OperationID: "alunos-list",
		Method:      http.MethodGet,
		Path:        "/api/v1/alunos",
		Summary:     "Listar alunos",
		Description: "Lista os alunos do usuário, do mais recente ao mais antigo.",
		Tags:        []string{"alunos"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.middleware,
	}
}

func (h *Handler) createOp() huma.Operation {
	return huma.Operation{
		OperationID: "alunos-create",
		Method:      http.MethodPost,
		Path:        "/api/v1/alunos",
		Summary:     "Cadastrar aluno",
		Tags:        []string{"alunos"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.middleware,
	}
}

func (h *Handler) updateOp() huma.Operation {
	return huma.Operation{
		OperationID: "alunos-update",
		Method:      http.MethodPut,
		Path:        "/api/v1/alunos/{id}",
		Summary:     "Atualizar aluno",
		Tags:        []string{"alunos"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.middleware,
	}
}

func (h *Handler) deleteOp() huma.Operation {
	return huma.Operation{
		OperationID: "alunos-delete",
		Method:      http.MethodDelete,
		Path:        "/api/v1/alunos/{id}",
		Summary:     "Excluir aluno",
		Description: "Exclusão definitiva. Esta ação não pode ser desfeita.",
		Tags:        []string{"alunos"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.middleware,
	}
}
