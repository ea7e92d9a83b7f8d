package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/exp/slog"

	"questiondesk/internal/app/server"
	"questiondesk/internal/config"
	"questiondesk/internal/utils/logger"
)

var (
	cfg        *config.Config
	log        *slog.Logger
	app        *server.App
	jsonOutput bool
)

var rootCmd = &cobra.Command{
	Use:   "questiondesk",
	Short: "Questiondesk - HTTP API over an Airtable table of questions",
	Long: `Questiondesk serves the questions stored in an Airtable table over a
JSON API: CRUD, assignee filtering, bulk reassignment and typo-tolerant
search. Without a sub-command it starts the HTTP server.`,
	PersistentPreRunE: setupApp,
	RunE:              runServe,
	SilenceUsage:      true,
	SilenceErrors:     true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func setupApp(_ *cobra.Command, _ []string) error {
	var err error
	cfg, err = config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log = logger.NewWithLevel(cfg.Env, cfg.Logger.LogLevel)
	app = server.New(cfg, log)

	return nil
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.String("env-file", "", "path to a .env file (default .env)")
	flags.String("env", "", "environment: local, dev or prod")
	flags.String("log-level", "", "debug, info, warn or error")
	flags.String("port", "", "listen port (default 3001)")

	_ = viper.BindPFlag(config.KeyEnvFile, flags.Lookup("env-file"))
	_ = viper.BindPFlag(config.KeyEnv, flags.Lookup("env"))
	_ = viper.BindPFlag(config.KeyLogLevel, flags.Lookup("log-level"))
	_ = viper.BindPFlag(config.KeyPort, flags.Lookup("port"))

	rootCmd.AddCommand(ServeCmd)
	rootCmd.AddCommand(RecordsCmd)
}
