package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	configPath string
	verbose    bool
)

// NewRootCommand creates the root command for the CLI
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "realmfleet",
		Short: "realmfleet - Run the mission-driven fleet AI over a scenario",
		Long: `realmfleet drives AI realms turn by turn: every fleet follows its mission,
detours around black holes and suns, and missions are pruned as fleets die.

Examples:
  realmfleet simulate --scenario scenarios/skirmish.yaml --turns 20
  realmfleet simulate --scenario scenarios/skirmish.yaml --journal
  realmfleet journal show --realm Terrans
  realmfleet config show`,
		SilenceUsage: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "",
		"Path to config file (default: ./config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"Enable debug logging")

	rootCmd.AddCommand(NewConfigCommand())
	rootCmd.AddCommand(NewSimulateCommand())
	rootCmd.AddCommand(NewJournalCommand())

	return rootCmd
}

// Execute runs the root command
func Execute() {
	rootCmd := NewRootCommand()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
