package aluno

import (
	"context"
	"fmt"
	"time"

	"alunos/internal/domain/aluno"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	updNome  string
	updEmail string
	updCurso string
	updIdade string
)

var UpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Atualizar aluno",
	Long: `Atualiza os dados de um aluno existente. O id pode ser o ID completo
ou um prefixo único (como exibido em "alunos aluno list").`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := appFromContext(cmd)
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
		defer cancel()

		target, err := resolveAluno(ctx, app, args[0])
		if err != nil {
			return err
		}

		payload, err := aluno.ParsePayload(updNome, updEmail, updCurso, updIdade)
		if err != nil {
			return err
		}

		if _, err := app.UpdateAluno(ctx, target.ID, payload); err != nil {
			return fmt.Errorf("erro ao salvar: %w", err)
		}

		color.Green("✅ Aluno atualizado!")
		return nil
	},
}

func init() {
	UpdateCmd.Flags().StringVar(&updNome, "nome", "", "nome do aluno")
	UpdateCmd.Flags().StringVar(&updEmail, "email", "", "e-mail do aluno")
	UpdateCmd.Flags().StringVar(&updCurso, "curso", "", "curso matriculado")
	UpdateCmd.Flags().StringVar(&updIdade, "idade", "", "idade em anos")

	_ = UpdateCmd.MarkFlagRequired("nome")
	_ = UpdateCmd.MarkFlagRequired("email")
	_ = UpdateCmd.MarkFlagRequired("curso")
	_ = UpdateCmd.MarkFlagRequired("idade")
}
