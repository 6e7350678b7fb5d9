package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/AlyyanAhmed21/ai-portfolio/internal/core/ports/driven"
	"github.com/AlyyanAhmed21/ai-portfolio/internal/core/ports/driving"
	"github.com/AlyyanAhmed21/ai-portfolio/internal/logger"
)

// version is the application version, overridden at build time via ldflags.
var version = "dev"

// Services injected by the composition root. Commands that need a service
// check for nil and report a configuration error rather than panicking.
var (
	assistantService driving.AssistantService
	knowledgeService driving.KnowledgeService
	configStore      driven.ConfigStore
)

// Services bundles everything the command tree needs from the composition
// root.
type Services struct {
	Assistant driving.AssistantService
	Knowledge driving.KnowledgeService
	Config    driven.ConfigStore
}

// SetServices injects the wired services into the command tree.
func SetServices(s *Services) {
	if s == nil {
		return
	}
	assistantService = s.Assistant
	knowledgeService = s.Knowledge
	configStore = s.Config
}

var verbose bool

// rootCmd is the base command all subcommands attach to.
var rootCmd = &cobra.Command{
	Use:   "portfolio",
	Short: "AI assistant grounded in your GitHub and Google Drive portfolio",
	Long: `Portfolio is a retrieval-augmented assistant for your own work.

It indexes your public GitHub repositories and the documents in a shared
Google Drive folder, routes each question to the matching knowledge domain
and answers it with a local Ollama model, grounded strictly in the
retrieved context.`,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

// Execute runs the root command. The context is propagated to the
// long-running subcommands so they shut down when it is cancelled.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}
