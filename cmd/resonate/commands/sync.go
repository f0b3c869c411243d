// ABOUTME: Sync commands for Charm cloud synchronization
// ABOUTME: Provides status, now, push, wipe, and keys management
package commands

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/harper/resonate/internal/charm"
	"github.com/harper/resonate/internal/config"
	"github.com/harper/resonate/internal/storage"
)

// NewSyncCmd creates the sync command group
func NewSyncCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sync",
		Short: "Manage Charm cloud synchronization",
		Long: `Manage synchronization with Charm cloud.

Resonate uses Charm to mirror the interest profile and embedding cache
across devices linked to the same Charm account, so a profile built on
one machine can rank posts on another without re-embedding.`,
	}

	cmd.AddCommand(newSyncStatusCmd())
	cmd.AddCommand(newSyncNowCmd())
	cmd.AddCommand(newSyncPushCmd())
	cmd.AddCommand(newSyncWipeCmd())
	cmd.AddCommand(newSyncKeysCmd())

	return cmd
}

// charmClient builds a Charm client from the loaded configuration so the
// sync commands honor CHARM_HOST/CHARM_DB/CHARM_AUTO_SYNC the same way the
// rest of the engine does.
func charmClient() (*charm.Client, *config.Config, error) {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("loading config: %w", err)
	}

	client, err := charm.NewClient(&charm.Config{
		Host:     cfg.CharmHost,
		DBName:   cfg.CharmDBName,
		AutoSync: cfg.AutoSync,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to Charm: %w", err)
	}
	return client, cfg, nil
}

func newSyncStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show sync status and connection info",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, cfg, err := charmClient()
			if err != nil {
				return err
			}
			defer client.Close()

			id, err := client.ID()
			if err != nil {
				fmt.Println("Status: Not connected")
				fmt.Println("Run 'resonate sync keys' to check your SSH keys")
				return nil
			}

			fmt.Println("Status: Connected")
			fmt.Printf("User ID: %s\n", id)
			fmt.Printf("Host: %s\n", cfg.CharmHost)

			return nil
		},
	}
}

func newSyncNowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "now",
		Short: "Force immediate sync with Charm cloud",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, _, err := charmClient()
			if err != nil {
				return err
			}
			defer client.Close()

			fmt.Println("Syncing...")
			if err := client.Sync(); err != nil {
				return fmt.Errorf("sync failed: %w", err)
			}

			fmt.Println("Sync complete")
			return nil
		},
	}
}

func newSyncPushCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "push",
		Short: "Push local embeddings and profile to the cloud cache",
		Long: `Push all locally cached embeddings and the interest profile to
the Charm cloud cache, making them available to other linked devices.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, _, err := charmClient()
			if err != nil {
				return err
			}
			defer client.Close()

			store, err := storage.NewStorage()
			if err != nil {
				return fmt.Errorf("failed to open storage: %w", err)
			}
			defer store.Close()

			cache := storage.NewVectorCache(client)

			pushed, err := cache.Push(store.Embeddings())
			if err != nil {
				return fmt.Errorf("pushing embeddings: %w", err)
			}

			profile, err := store.GetInterestProfile()
			if err == nil && profile != nil {
				if err := cache.SaveProfile(profile); err != nil {
					return fmt.Errorf("pushing profile: %w", err)
				}
			}

			fmt.Printf("Pushed %d embedding(s)\n", pushed)
			return nil
		},
	}
}

func newSyncWipeCmd() *cobra.Command {
	var confirm bool

	cmd := &cobra.Command{
		Use:   "wipe",
		Short: "Wipe all local Charm data (nuclear option)",
		Long: `Completely wipe all local Charm data.

WARNING: This deletes all locally cached cloud data. Your cloud data
remains intact and will be re-synced on next access.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !confirm {
				fmt.Println("This will wipe ALL local Charm data!")
				fmt.Println("Run with --confirm to proceed")
				return nil
			}

			client, _, err := charmClient()
			if err != nil {
				return err
			}
			defer client.Close()

			if err := client.Reset(); err != nil {
				return fmt.Errorf("failed to wipe data: %w", err)
			}

			fmt.Println("Local data wiped successfully")
			return nil
		},
	}

	cmd.Flags().BoolVar(&confirm, "confirm", false, "Confirm the wipe operation")

	return cmd
}

func newSyncKeysCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "keys",
		Short: "List authorized SSH keys",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, _, err := charmClient()
			if err != nil {
				return err
			}
			defer client.Close()

			keys, err := client.GetAuthorizedKeys()
			if err != nil {
				return fmt.Errorf("failed to get authorized keys: %w", err)
			}

			if keys == "" {
				fmt.Println("No authorized keys found")
				return nil
			}

			fmt.Println("Authorized SSH keys:")
			fmt.Println(keys)

			return nil
		},
	}
}
