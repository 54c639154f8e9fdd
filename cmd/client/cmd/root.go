package cmd

import (
	"context"
	"fmt"
	"os"

	"alunos/cmd/client/cmd/types"
	"alunos/internal/app/client"
	"alunos/internal/app/client/config"
	"alunos/internal/utils/logger"

	"github.com/spf13/cobra"
	"golang.org/x/exp/slog"
)

var (
	cfg       *config.Config
	log       *slog.Logger
	app       *client.App
	serverURL string
	debug     bool
)

var rootCmd = &cobra.Command{
	Use:   "alunos",
	Short: "Sistema de Alunos - gestão de registros de alunos",
	Long: `Sistema de Alunos é um cliente de linha de comando para gerenciar
registros de alunos (nome, e-mail, curso e idade).

Os registros ficam no servidor, protegidos por sessão: cadastre-se com
"alunos auth register", entre com "alunos auth login" e gerencie os
registros com os subcomandos de "alunos aluno".`,
	PersistentPreRunE: setupApp,
	SilenceUsage:      true,
	SilenceErrors:     true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Erro: %v\n", err)
		os.Exit(1)
	}
}

func setupApp(cmd *cobra.Command, _ []string) error {
	cfg = config.MustLoad()

	if serverURL != "" {
		cfg.ServerAddress = serverURL
	}
	if debug {
		cfg.Env = "dev"
	}

	log = logger.New(cfg.Env)

	var err error
	app, err = client.New(cfg, log)
	if err != nil {
		return fmt.Errorf("erro ao inicializar aplicação: %w", err)
	}

	cmd.SetContext(context.WithValue(cmd.Context(), types.ClientAppKey, app))
	return nil
}

func init() {
	rootCmd.PersistentFlags().StringVar(&serverURL, "server", "", "endereço do servidor")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "habilitar modo de depuração")
}
