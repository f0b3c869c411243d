// ABOUTME: CLI commands to view and manage the interest profile
// ABOUTME: Supports show, set, and LLM-based inference from free text
package commands

import (
	"encoding/json"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/harper/resonate/internal/config"
	"github.com/harper/resonate/internal/llm"
	"github.com/harper/resonate/internal/models"
	"github.com/harper/resonate/internal/storage"
	"github.com/joho/godotenv"
)

var (
	interestTopics  []string
	interestHandle  string
	interestReplace bool
)

// NewInterestsCmd creates the interests command group
func NewInterestsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "interests",
		Short: "View and manage your interest profile",
		Long: `View and manage the interest profile used for relevance scoring.

The profile is a list of topics; their joined text is embedded and
compared against post text to produce relevance scores.

Examples:
  resonate interests
  resonate interests set --topic "Go programming" --topic "vector search"
  resonate interests infer "I mostly post about databases and homelab gear"`,
		RunE: runInterestsShow,
	}

	setCmd := &cobra.Command{
		Use:   "set",
		Short: "Add or replace interest topics",
		Long: `Add or replace interest topics.

Topics accumulate by default; use --replace to start over.

Examples:
  resonate interests set --topic "MCP servers" --topic "Go programming"
  resonate interests set --replace --topic "woodworking"`,
		RunE: runInterestsSet,
	}
	setCmd.Flags().StringArrayVar(&interestTopics, "topic", nil, "Add a topic (can be repeated)")
	setCmd.Flags().StringVar(&interestHandle, "handle", "", "Social handle the profile belongs to")
	setCmd.Flags().BoolVar(&interestReplace, "replace", false, "Replace existing topics instead of adding")

	inferCmd := &cobra.Command{
		Use:   "infer <text>",
		Short: "Infer interest topics from free text",
		Long: `Infer interest topics from a free-form description using the LLM.

Extracted topics are merged into the existing profile.

Examples:
  resonate interests infer "bio: distributed systems nerd, sourdough baker"`,
		Args: cobra.MinimumNArgs(1),
		RunE: runInterestsInfer,
	}

	cmd.AddCommand(setCmd)
	cmd.AddCommand(inferCmd)

	return cmd
}

func runInterestsShow(cmd *cobra.Command, args []string) error {
	_ = godotenv.Load()

	store, err := storage.NewStorage()
	if err != nil {
		return fmt.Errorf("initializing storage: %w", err)
	}
	defer store.Close()

	profile, err := store.GetInterestProfile()
	if err != nil {
		return fmt.Errorf("getting profile: %w", err)
	}

	if profile == nil || len(profile.Interests) == 0 {
		if !quiet {
			fmt.Fprintf(cmd.OutOrStdout(), "No interests set. Add some with: resonate interests set --topic \"Go programming\"\n")
		}
		return nil
	}

	if outputFormat == "json" {
		jsonData, err := json.MarshalIndent(profile, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling JSON: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s\n", jsonData)
		return nil
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "FIELD\tVALUE\n")
	fmt.Fprintf(w, "-----\t-----\n")

	handle := profile.Handle
	if handle == "" {
		handle = "(not set)"
	}
	fmt.Fprintf(w, "Handle\t%s\n", handle)
	fmt.Fprintf(w, "Topics\t%s\n", truncate(strings.Join(profile.Interests, ", "), 60))
	fmt.Fprintf(w, "Last Updated\t%s\n", formatTime(profile.LastUpdated))
	w.Flush()

	if len(profile.Interests) > 3 {
		fmt.Fprintf(cmd.OutOrStdout(), "\nTopics:\n")
		for _, t := range profile.Interests {
			fmt.Fprintf(cmd.OutOrStdout(), "  • %s\n", t)
		}
	}

	return nil
}

func runInterestsSet(cmd *cobra.Command, args []string) error {
	_ = godotenv.Load()

	if len(interestTopics) == 0 && interestHandle == "" {
		return fmt.Errorf("no updates specified. Use --topic or --handle")
	}

	store, err := storage.NewStorage()
	if err != nil {
		return fmt.Errorf("initializing storage: %w", err)
	}
	defer store.Close()

	profile, err := store.GetInterestProfile()
	if err != nil {
		return fmt.Errorf("getting profile: %w", err)
	}
	if profile == nil {
		profile = &models.InterestProfile{}
	}

	if interestReplace {
		profile.Interests = nil
	}
	for _, topic := range interestTopics {
		profile.AddInterest(topic)
	}
	if interestHandle != "" {
		profile.Handle = interestHandle
	}

	if err := store.SaveInterestProfile(profile); err != nil {
		return fmt.Errorf("saving profile: %w", err)
	}

	if !quiet {
		fmt.Fprintf(cmd.OutOrStdout(), "Interest profile updated (%d topic(s))\n", len(profile.Interests))
	}

	return nil
}

func runInterestsInfer(cmd *cobra.Command, args []string) error {
	_ = godotenv.Load()

	text := strings.Join(args, " ")

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if cfg.OpenAIKey == "" {
		return fmt.Errorf("OPENAI_API_KEY is required for interest inference")
	}

	client, err := llm.NewOpenAIClientFromConfig(cfg)
	if err != nil {
		return fmt.Errorf("initializing OpenAI client: %w", err)
	}

	topics, err := client.ExtractInterests(text)
	if err != nil {
		return fmt.Errorf("extracting interests: %w", err)
	}
	if len(topics) == 0 {
		return fmt.Errorf("no interests could be extracted from the text")
	}

	store, err := storage.NewStorage()
	if err != nil {
		return fmt.Errorf("initializing storage: %w", err)
	}
	defer store.Close()

	profile, err := store.GetInterestProfile()
	if err != nil {
		return fmt.Errorf("getting profile: %w", err)
	}
	if profile == nil {
		profile = &models.InterestProfile{}
	}

	added := 0
	for _, topic := range topics {
		if !containsString(profile.Interests, topic) {
			profile.AddInterest(topic)
			added++
		}
	}

	if err := store.SaveInterestProfile(profile); err != nil {
		return fmt.Errorf("saving profile: %w", err)
	}

	if !quiet {
		fmt.Fprintf(cmd.OutOrStdout(), "Inferred %d topic(s), %d new\n", len(topics), added)
		for _, t := range topics {
			fmt.Fprintf(cmd.OutOrStdout(), "  • %s\n", t)
		}
	}

	return nil
}
