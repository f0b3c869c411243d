// ABOUTME: Tests for the interests command group structure
// ABOUTME: Verifies subcommands and flag registration

package commands

import (
	"strings"
	"testing"
)

func TestNewInterestsCmd(t *testing.T) {
	cmd := NewInterestsCmd()

	if cmd.Use != "interests" {
		t.Errorf("Use = %q, want %q", cmd.Use, "interests")
	}

	expectedSubcommands := []string{"set", "infer"}
	for _, name := range expectedSubcommands {
		t.Run(name, func(t *testing.T) {
			found := false
			for _, sub := range cmd.Commands() {
				if sub.Use == name || strings.HasPrefix(sub.Use, name+" ") {
					found = true
					break
				}
			}
			if !found {
				t.Errorf("Subcommand %q not found", name)
			}
		})
	}
}

func TestInterestsSetCmd_Flags(t *testing.T) {
	cmd := NewInterestsCmd()

	for _, sub := range cmd.Commands() {
		if sub.Use != "set" {
			continue
		}
		for _, flagName := range []string{"topic", "handle", "replace"} {
			if sub.Flags().Lookup(flagName) == nil {
				t.Errorf("--%s flag not found on set", flagName)
			}
		}
		return
	}
	t.Fatal("set subcommand not found")
}
