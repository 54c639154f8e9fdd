package auth

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var LoginCmd = &cobra.Command{
	Use:   "login",
	Short: "Entrar no sistema",
	Long: `Autenticação no servidor.

Após o login, o token de sessão fica salvo localmente para as próximas
operações.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := appFromContext(cmd)
		if err != nil {
			return err
		}

		fmt.Println("=== Entrar no sistema ===")
		fmt.Println()

		fmt.Print("E-mail: ")
		var email string
		_, _ = fmt.Scanln(&email)

		fmt.Print("Senha: ")
		password, err := term.ReadPassword(int(os.Stdin.Fd()))
		if err != nil {
			return fmt.Errorf("erro ao ler senha: %w", err)
		}
		fmt.Println()

		fmt.Println("Autenticando...")
		ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
		defer cancel()

		if err := app.Login(ctx, email, string(password)); err != nil {
			return fmt.Errorf("erro na autenticação: %w", err)
		}

		fmt.Println()
		color.Green("✅ Login realizado com sucesso!")

		return nil
	},
}
