// ABOUTME: Root CLI command with global flags and subcommand registration
// ABOUTME: Defines the resonate command tree and shared output settings
package commands

import (
	"github.com/spf13/cobra"
)

// Global flags shared by all subcommands
var (
	verbose      bool
	quiet        bool
	outputFormat string
)

const banner = `
██████╗ ███████╗███████╗ ██████╗ ███╗   ██╗ █████╗ ████████╗███████╗
██╔══██╗██╔════╝██╔════╝██╔═══██╗████╗  ██║██╔══██╗╚══██╔══╝██╔════╝
██████╔╝█████╗  ███████╗██║   ██║██╔██╗ ██║███████║   ██║   █████╗
██╔══██╗██╔══╝  ╚════██║██║   ██║██║╚██╗██║██╔══██║   ██║   ██╔══╝
██║  ██║███████╗███████║╚██████╔╝██║ ╚████║██║  ██║   ██║   ███████╗
╚═╝  ╚═╝╚══════╝╚══════╝ ╚═════╝ ╚═╝  ╚═══╝╚═╝  ╚═╝   ╚═╝   ╚══════╝
`

// NewRootCmd creates the root command with all subcommands
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "resonate",
		Short: "Rank social posts by engagement likelihood",
		Long: banner + `
Resonate ranks candidate social posts by how likely you are to engage
with them. It combines topical relevance against your interest profile
(via OpenAI embeddings) with behavioral signals about each author.

Set up your interests, then feed it posts:

  resonate interests set --topic "Go programming" --topic "vector search"
  resonate rank posts.json
  resonate score "a post about database internals"`,
		SilenceUsage: true,
	}

	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")
	cmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress non-essential output")
	cmd.PersistentFlags().StringVar(&outputFormat, "format", "auto", "Output format: auto, table, json")
	cmd.MarkFlagsMutuallyExclusive("verbose", "quiet")

	cmd.AddCommand(NewRankCmd())
	cmd.AddCommand(NewScoreCmd())
	cmd.AddCommand(NewInterestsCmd())
	cmd.AddCommand(NewSyncCmd())
	cmd.AddCommand(NewMCPCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command
func Execute() error {
	return NewRootCmd().Execute()
}
