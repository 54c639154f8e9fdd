package aluno

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var force bool

var DeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Excluir aluno",
	Long: `Exclui um aluno definitivamente. O id pode ser o ID completo ou um
prefixo único (como exibido em "alunos aluno list").`,
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

		if !force {
			fmt.Printf("Tem certeza que deseja excluir o aluno %q? Esta ação não pode ser desfeita. (s/N): ", target.Nome)

			reader := bufio.NewReader(os.Stdin)
			answer, _ := reader.ReadString('\n')
			answer = strings.ToLower(strings.TrimSpace(answer))

			if answer != "s" && answer != "sim" {
				fmt.Println("Exclusão cancelada.")
				return nil
			}
		}

		if err := app.DeleteAluno(ctx, target.ID); err != nil {
			return fmt.Errorf("erro ao salvar: %w", err)
		}

		color.Green("✅ Aluno excluído!")
		return nil
	},
}

func init() {
	DeleteCmd.Flags().BoolVarP(&force, "force", "f", false, "excluir sem pedir confirmação")
}
