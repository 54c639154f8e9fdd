package auth

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var RegisterCmd = &cobra.Command{
	Use:   "register",
	Short: "Cadastrar um novo usuário",
	Long: `Cadastro de um novo usuário no servidor.

Depois do cadastro, entre com: alunos auth login`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := appFromContext(cmd)
		if err != nil {
			return err
		}

		fmt.Println("=== Cadastro de novo usuário ===")
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

		fmt.Print("Repita a senha: ")
		passwordConfirm, err := term.ReadPassword(int(os.Stdin.Fd()))
		if err != nil {
			return fmt.Errorf("erro ao ler senha: %w", err)
		}
		fmt.Println()

		if string(password) != string(passwordConfirm) {
			return fmt.Errorf("as senhas não coincidem")
		}

		if len(password) < 6 {
			return fmt.Errorf("a senha deve ter no mínimo 6 caracteres")
		}

		fmt.Println("Cadastrando...")
		if err := app.Register(cmd.Context(), email, string(password)); err != nil {
			return fmt.Errorf("erro no cadastro: %w", err)
		}

		fmt.Println()
		color.Green("✅ Cadastro concluído com sucesso!")
		fmt.Println("Agora você pode entrar: alunos auth login")

		return nil
	},
}
