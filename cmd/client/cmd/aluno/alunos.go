package aluno

import (
	"context"
	"fmt"
	"strings"

	"alunos/cmd/client/cmd/types"
	"alunos/internal/app/client"
	"alunos/internal/domain/aluno"

	"github.com/spf13/cobra"
)

// AlunoCmd is the parent command for record operations.
var AlunoCmd = &cobra.Command{
	Use:   "aluno",
	Short: "Gerenciar registros de alunos",
	Long:  `Listagem, cadastro, atualização e exclusão de registros de alunos.`,
}

func appFromContext(cmd *cobra.Command) (*client.App, error) {
	app, ok := cmd.Context().Value(types.ClientAppKey).(*client.App)
	if !ok || app == nil {
		return nil, fmt.Errorf("aplicação não inicializada")
	}
	return app, nil
}

// resolveAluno matches an exact ID or a unique ID prefix against the user's
// records.
func resolveAluno(ctx context.Context, app *client.App, idOrPrefix string) (*aluno.Aluno, error) {
	alunos, err := app.ListAlunos(ctx)
	if err != nil {
		return nil, fmt.Errorf("erro ao carregar alunos: %w", err)
	}

	var matches []aluno.Aluno
	for _, a := range alunos {
		if a.ID == idOrPrefix {
			return &a, nil
		}
		if strings.HasPrefix(a.ID, idOrPrefix) {
			matches = append(matches, a)
		}
	}

	switch len(matches) {
	case 1:
		return &matches[0], nil
	case 0:
		return nil, fmt.Errorf("aluno não encontrado: %s", idOrPrefix)
	default:
		return nil, fmt.Errorf("id ambíguo %q: corresponde a %d alunos", idOrPrefix, len(matches))
	}
}
