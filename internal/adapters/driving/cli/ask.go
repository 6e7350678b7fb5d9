package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/AlyyanAhmed21/ai-portfolio/internal/core/domain"
)

var askJSON bool

var askCmd = &cobra.Command{
	Use:   "ask [question]",
	Short: "Ask the assistant a single question",
	Long: `Answers one question using the indexed portfolio knowledge.
The question is routed to a knowledge domain, grounded with the nearest
retrieved context and answered by the language model.`,
	Args: cobra.ExactArgs(1),
	RunE: runAsk,
}

func init() {
	askCmd.Flags().BoolVar(&askJSON, "json", false, "output the answer as JSON")
	rootCmd.AddCommand(askCmd)
}

func runAsk(cmd *cobra.Command, args []string) error {
	if assistantService == nil {
		return errors.New("assistant service not configured")
	}

	ctx := context.Background()

	answer, err := assistantService.Ask(ctx, args[0])
	if err != nil {
		return fmt.Errorf("ask failed: %w", err)
	}

	if askJSON {
		return outputAskJSON(cmd, answer)
	}

	return outputAskText(cmd, answer)
}

type askOutput struct {
	Answer   string   `json:"answer"`
	Category string   `json:"category"`
	Sources  []string `json:"sources"`
}

func outputAskJSON(cmd *cobra.Command, answer domain.Answer) error {
	out := askOutput{
		Answer:   answer.Text,
		Category: string(answer.Domain),
		Sources:  sourceNames(answer.Sources),
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding answer: %w", err)
	}

	cmd.Println(string(data))
	return nil
}

func outputAskText(cmd *cobra.Command, answer domain.Answer) error {
	cmd.Println(answer.Text)

	if names := sourceNames(answer.Sources); len(names) > 0 {
		cmd.Println()
		cmd.Printf("Sources: %s\n", strings.Join(names, ", "))
	}

	return nil
}

// sourceNames reduces grounding chunks to deduplicated display labels,
// preferring the repository or file name over the raw provenance tag.
func sourceNames(chunks []domain.Chunk) []string {
	seen := make(map[string]struct{}, len(chunks))
	names := make([]string, 0, len(chunks))
	for _, chunk := range chunks {
		name := chunk.Metadata["repo_name"]
		if name == "" {
			name = chunk.Metadata["file_name"]
		}
		if name == "" {
			name = chunk.Source()
		}
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		names = append(names, name)
	}
	return names
}
