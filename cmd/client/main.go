package main

import "alunos/cmd/client/cmd"

func main() {
	cmd.Execute()
}
