package auth

import (
	"fmt"

	"alunos/cmd/client/cmd/types"
	"alunos/internal/app/client"

	"github.com/spf13/cobra"
)

// AuthCmd is the parent command for account operations.
var AuthCmd = &cobra.Command{
	Use:   "auth",
	Short: "Gerenciar conta de usuário",
	Long:  `Cadastro, login e logout no servidor.`,
}

func appFromContext(cmd *cobra.Command) (*client.App, error) {
	app, ok := cmd.Context().Value(types.ClientAppKey).(*client.App)
	if !ok || app == nil {
		return nil, fmt.Errorf("aplicação não inicializada")
	}
	return app, nil
}
