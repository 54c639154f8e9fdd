package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var LogoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Sair do sistema",
	Long:  `Encerra a sessão no servidor e remove o token salvo localmente.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := appFromContext(cmd)
		if err != nil {
			return err
		}

		if !app.IsAuthenticated() {
			fmt.Println("Nenhuma sessão ativa.")
			return nil
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
		defer cancel()

		if err := app.Logout(ctx); err != nil {
			// The local token is gone either way; warn and move on.
			fmt.Printf("⚠️  Aviso: não foi possível encerrar a sessão no servidor: %v\n", err)
		}

		color.Green("✅ Sessão encerrada.")
		return nil
	},
}
