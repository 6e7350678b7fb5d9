package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/AlyyanAhmed21/ai-portfolio/internal/adapters/driving/api"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	Long: `Start the REST API server.

Endpoints:
  GET  /            - welcome message
  POST /api/v1/chat - ask a question

The server runs until interrupted.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", ":8000", "listen address")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	if assistantService == nil {
		return errors.New("assistant service not configured")
	}

	server, err := api.NewServer(assistantService)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "API server listening on http://localhost%s\n", serveAddr)
	return server.Run(cmd.Context(), serveAddr)
}
