package cmd

import (
	"alunos/cmd/client/cmd/aluno"
	"alunos/cmd/client/cmd/auth"
)

func init() {
	rootCmd.AddCommand(auth.AuthCmd)
	auth.AuthCmd.AddCommand(auth.RegisterCmd)
	auth.AuthCmd.AddCommand(auth.LoginCmd)
	auth.AuthCmd.AddCommand(auth.LogoutCmd)

	rootCmd.AddCommand(aluno.AlunoCmd)
	aluno.AlunoCmd.AddCommand(aluno.ListCmd)
	aluno.AlunoCmd.AddCommand(aluno.AddCmd)
	aluno.AlunoCmd.AddCommand(aluno.UpdateCmd)
	aluno.AlunoCmd.AddCommand(aluno.DeleteCmd)
}
