package cli

import (
	"errors"
	"fmt"
	"os"
	"runtime/debug"

	"github.com/spf13/cobra"

	"github.com/AlyyanAhmed21/ai-portfolio/internal/adapters/driving/tui"
)

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Launch the interactive chat UI",
	Long: `Launch the interactive terminal chat interface.

Type a question and press Enter to ask. Answers include the knowledge
domain the question was routed to and the sources that grounded them.

Controls:
  Enter      - Ask
  Ctrl+C / D - Quit`,
	RunE: runChat,
}

func init() {
	rootCmd.AddCommand(chatCmd)
}

func runChat(_ *cobra.Command, _ []string) error {
	// Panic recovery so a rendering bug leaves a stack trace, not a
	// corrupted terminal.
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Panic in chat UI: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
		}
	}()

	if assistantService == nil {
		return errors.New("assistant service not configured")
	}

	if err := tui.Run(assistantService); err != nil {
		return fmt.Errorf("chat UI error: %w", err)
	}

	return nil
}
