package aluno

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"alunos/internal/domain/aluno"

	"github.com/spf13/cobra"
)

var (
	buscar     string
	listFormat string
)

var ListCmd = &cobra.Command{
	Use:   "list",
	Short: "Listar alunos",
	Long: `Lista os alunos cadastrados, do mais recente ao mais antigo.

Use --buscar para filtrar por nome (busca parcial, sem diferenciar
maiúsculas de minúsculas).`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := appFromContext(cmd)
		if err != nil {
			return err
		}

		alunos, err := app.ListAlunos(cmd.Context())
		if err != nil {
			return fmt.Errorf("erro ao carregar alunos: %w", err)
		}

		if len(alunos) == 0 {
			fmt.Println("Nenhum aluno cadastrado.")
			return nil
		}

		filtered := aluno.FilterByName(alunos, buscar)
		if len(filtered) == 0 {
			fmt.Printf("Nenhum aluno encontrado para %q.\n", buscar)
			return nil
		}

		switch listFormat {
		case "json":
			return printAlunosJSON(filtered)
		default:
			return printAlunosTable(filtered)
		}
	},
}

func printAlunosTable(alunos []aluno.Aluno) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "ID\tNome\tE-mail\tCurso\tIdade\tCadastrado em\t\n")
	fmt.Fprintf(w, "---\t---\t---\t---\t---\t---\t\n")

	for _, a := range alunos {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\t%s\t\n",
			shortID(a.ID),
			a.Nome,
			a.Email,
			a.Curso,
			a.Idade,
			a.CreatedAt.Format("2006-01-02"),
		)
	}

	w.Flush()
	fmt.Printf("\nTotal de alunos: %d\n", len(alunos))
	return nil
}

func printAlunosJSON(alunos []aluno.Aluno) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(alunos)
}

func shortID(id string) string {
	if len(id) <= 8 {
		return id
	}
	return id[:8]
}

func init() {
	ListCmd.Flags().StringVarP(&buscar, "buscar", "b", "", "filtrar por nome")
	ListCmd.Flags().StringVarP(&listFormat, "format", "f", "table", "formato de saída (table, json)")
}
