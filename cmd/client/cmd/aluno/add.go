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
	addNome  string
	addEmail string
	addCurso string
	addIdade string
)

var AddCmd = &cobra.Command{
	Use:   "add",
	Short: "Cadastrar aluno",
	Long: `Cadastra um novo aluno com nome, e-mail, curso e idade.

Exemplo:
  alunos aluno add --nome "Ana Silva" --email ana@escola.br --curso Engenharia --idade 21`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := appFromContext(cmd)
		if err != nil {
			return err
		}

		// Validate locally before touching the server.
		payload, err := aluno.ParsePayload(addNome, addEmail, addCurso, addIdade)
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
		defer cancel()

		created, err := app.CreateAluno(ctx, payload)
		if err != nil {
			return fmt.Errorf("erro ao salvar: %w", err)
		}

		color.Green("✅ Aluno cadastrado!")
		fmt.Printf("ID: %s\n", created.ID)
		return nil
	},
}

func init() {
	AddCmd.Flags().StringVar(&addNome, "nome", "", "nome do aluno")
	AddCmd.Flags().StringVar(&addEmail, "email", "", "e-mail do aluno")
	AddCmd.Flags().StringVar(&addCurso, "curso", "", "curso matriculado")
	AddCmd.Flags().StringVar(&addIdade, "idade", "", "idade em anos")

	_ = AddCmd.MarkFlagRequired("nome")
	_ = AddCmd.MarkFlagRequired("email")
	_ = AddCmd.MarkFlagRequired("curso")
	_ = AddCmd.MarkFlagRequired("idade")
}
