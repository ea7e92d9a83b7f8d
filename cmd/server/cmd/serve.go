package cmd

import (
	"github.com/spf13/cobra"
)

var ServeCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	Long: `Start the HTTP server on PORT (default 3001). SIGINT or SIGTERM stops
accepting connections and waits up to SHUTDOWN_TIMEOUT for running requests.`,
	RunE: runServe,
}

func runServe(cmd *cobra.Command, _ []string) error {
	return app.Run(cmd.Context())
}
