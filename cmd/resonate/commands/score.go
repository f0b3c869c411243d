// ABOUTME: CLI command to score a single post text for relevance
// ABOUTME: Prints the 0-100 score and its interpretation band
package commands

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// NewScoreCmd creates the score command
func NewScoreCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "score <text>",
		Short: "Score post text against your interest profile",
		Long: `Score a piece of post text against your interest profile.

Prints a 0-100 relevance score and a human-readable interpretation.
Requires an interest profile (see 'resonate interests set') and an
OpenAI API key for embeddings.

Examples:
  resonate score "deep dive into Go scheduler internals"
  resonate score --format json "new embedding model dropped"`,
		Args: cobra.MinimumNArgs(1),
		RunE: runScore,
	}

	return cmd
}

func runScore(cmd *cobra.Command, args []string) error {
	text := strings.Join(args, " ")
	if strings.TrimSpace(text) == "" {
		return fmt.Errorf("text must not be empty")
	}

	curator, store, _, err := buildEngine()
	if err != nil {
		return err
	}
	defer store.Close()

	score, label, err := curator.ScorePost(text)
	if err != nil {
		return fmt.Errorf("scoring text: %w", err)
	}

	if outputFormat == "json" {
		jsonData, err := json.MarshalIndent(map[string]interface{}{
			"score":          score,
			"interpretation": label,
		}, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling JSON: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s\n", jsonData)
		return nil
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Score: %d/100\n", score)
	fmt.Fprintf(cmd.OutOrStdout(), "Interpretation: %s\n", label)

	return nil
}
