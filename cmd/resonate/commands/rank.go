// ABOUTME: CLI command to rank candidate posts by engagement likelihood
// ABOUTME: Reads posts from a JSON file or stdin and prints the ranked feed
package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/harper/resonate/internal/models"
	"github.com/harper/resonate/internal/relevance"
)

var (
	rankLimit int
	rankStore bool
)

// NewRankCmd creates the rank command
func NewRankCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rank [posts.json]",
		Short: "Rank candidate posts by engagement likelihood",
		Long: `Rank candidate posts by predicted engagement likelihood.

Reads a JSON array of posts from the given file (or stdin when omitted)
and prints them ordered by composite score. Each post needs at least an
"id" and "text"; "author_id" enables behavioral signals.

Examples:
  resonate rank posts.json
  cat posts.json | resonate rank
  resonate rank posts.json --limit 5 --format json`,
		Args: cobra.MaximumNArgs(1),
		RunE: runRank,
	}

	cmd.Flags().IntVar(&rankLimit, "limit", 0, "Maximum posts to return (default: configured rank limit)")
	cmd.Flags().BoolVar(&rankStore, "store", false, "Persist the input posts to local storage")

	return cmd
}

func runRank(cmd *cobra.Command, args []string) error {
	posts, err := readPosts(args)
	if err != nil {
		return err
	}
	if len(posts) == 0 {
		if !quiet {
			fmt.Fprintf(cmd.OutOrStdout(), "No posts to rank\n")
		}
		return nil
	}

	curator, store, cfg, err := buildEngine()
	if err != nil {
		return err
	}
	defer store.Close()

	if rankLimit > 0 {
		if err := validatePositiveInt(rankLimit, "limit"); err != nil {
			return err
		}
		cfg.RankLimit = rankLimit
	}

	if rankStore {
		for i := range posts {
			if err := store.SavePost(&posts[i]); err != nil {
				return fmt.Errorf("storing post %s: %w", posts[i].ID, err)
			}
		}
	}

	ranked, err := curator.RankPosts(cmd.Context(), posts)
	if err != nil {
		return fmt.Errorf("ranking posts: %w", err)
	}

	if outputFormat == "json" {
		jsonData, err := json.MarshalIndent(ranked, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling JSON: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s\n", jsonData)
		return nil
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "RANK\tSCORE\tRELEVANCE\tAUTHOR\tTEXT\n")
	fmt.Fprintf(w, "----\t-----\t---------\t------\t----\n")
	for i, rp := range ranked {
		author := rp.Post.AuthorHandle
		if author == "" {
			author = rp.Post.AuthorID
		}
		fmt.Fprintf(w, "%d\t%.3f\t%d (%s)\t%s\t%s\n",
			i+1,
			rp.Score,
			rp.Relevance,
			relevance.Interpret(rp.Relevance),
			truncate(author, 20),
			truncate(rp.Post.Text, 50))
	}
	w.Flush()

	if !quiet {
		fmt.Fprintf(cmd.OutOrStdout(), "\nRanked %d of %d post(s)\n", len(ranked), len(posts))
	}

	return nil
}

// readPosts loads the candidate posts from a file argument or stdin
func readPosts(args []string) ([]models.Post, error) {
	var data []byte
	var err error

	if len(args) == 1 {
		data, err = os.ReadFile(args[0])
		if err != nil {
			return nil, fmt.Errorf("reading posts file: %w", err)
		}
	} else {
		data, err = io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("reading posts from stdin: %w", err)
		}
	}

	var posts []models.Post
	if err := json.Unmarshal(data, &posts); err != nil {
		return nil, fmt.Errorf("parsing posts JSON: %w", err)
	}

	// Posts without IDs get a local one so embeddings can still be cached
	for i := range posts {
		if posts[i].ID == "" {
			posts[i].ID = fmt.Sprintf("local_%s", uuid.New().String()[:8])
		}
	}
	return posts, nil
}
