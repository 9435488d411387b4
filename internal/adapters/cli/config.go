package cli

import (
	"fmt"
	"io"
	"net/url"

	"github.com/spf13/cobra"

	"github.com/andrescamacho/realmfleet-go/internal/infrastructure/config"
)

// NewConfigCommand creates the config command with subcommands
func NewConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect configuration settings",
		Long: `Inspect realmfleet configuration settings.

Configuration is loaded from multiple sources with priority:
1. Environment variables (RF_* prefix)
2. Config file (config.yaml)
3. Default values

Examples:
  realmfleet config show
  RF_AI_DETOUR_RADIUS=12 realmfleet config show`,
	}

	cmd.AddCommand(newConfigShowCommand())

	return cmd
}

// newConfigShowCommand creates the config show subcommand
func newConfigShowCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			cfg, err := config.LoadConfig(configPath)
			if err != nil {
				fmt.Fprintf(out, "Warning: Failed to load config: %v\n", err)
				fmt.Fprintln(out, "Using default configuration.")
				cfg = config.LoadConfigOrDefault("")
			}
			printConfig(out, cfg)
			return nil
		},
	}

	return cmd
}

func printConfig(out io.Writer, cfg *config.Config) {
	fmt.Fprintln(out, "realmfleet Configuration")
	fmt.Fprintln(out, "========================")

	fmt.Fprintln(out, "\nDatabase:")
	fmt.Fprintf(out, "  Type:             %s\n", cfg.Database.Type)
	switch {
	case cfg.Database.Type == "sqlite":
		fmt.Fprintf(out, "  Path:             %s\n", cfg.Database.SQLitePath())
	case cfg.Database.URL != "":
		fmt.Fprintf(out, "  URL:              %s\n", maskPassword(cfg.Database.URL))
	default:
		fmt.Fprintf(out, "  Host:             %s\n", cfg.Database.Host)
		fmt.Fprintf(out, "  Port:             %d\n", cfg.Database.Port)
		fmt.Fprintf(out, "  Database:         %s\n", cfg.Database.Name)
		fmt.Fprintf(out, "  User:             %s\n", cfg.Database.User)
		fmt.Fprintf(out, "  Max Connections:  %d\n", cfg.Database.Pool.MaxOpen)
	}

	fmt.Fprintln(out, "\nLogging:")
	fmt.Fprintf(out, "  Level:            %s\n", cfg.Logging.Level)
	fmt.Fprintf(out, "  Format:           %s\n", cfg.Logging.Format)
	fmt.Fprintf(out, "  Output:           %s\n", cfg.Logging.Output)

	fmt.Fprintln(out, "\nMetrics:")
	fmt.Fprintf(out, "  Enabled:          %t\n", cfg.Metrics.Enabled)
	fmt.Fprintf(out, "  Endpoint:         %s%s\n", cfg.Metrics.Address(), cfg.Metrics.Path)

	fmt.Fprintln(out, "\nFleet AI:")
	fmt.Fprintf(out, "  Detour Radius:    %d\n", cfg.AI.DetourRadius)
	fmt.Fprintf(out, "  Scan Radius:      %d\n", cfg.AI.ScanRadius)
	fmt.Fprintf(out, "  Hostile Search:   %d\n", cfg.AI.HostileSearchRadius)
	fmt.Fprintf(out, "  Colonists:        first > %d, next > %d\n",
		cfg.AI.FirstColonistThreshold, cfg.AI.NextColonistThreshold)
	fmt.Fprintf(out, "  Espionage Bonus:  %d\n", cfg.AI.EspionageBonus)

	race := cfg.AI.Race
	fmt.Fprintln(out, "\nRace Defaults:")
	fmt.Fprintf(out, "  Exploring:        %d turns\n", race.ExploringThreshold)
	fmt.Fprintf(out, "  Defense Refresh:  %d turns\n", race.DefenseRefresh)
	fmt.Fprintf(out, "  Attack Minimum:   %d bombers/troopers, %d military\n",
		race.AttackMinBombersTroopers, race.AttackMinMilitaryShips)
	fmt.Fprintf(out, "  Max Fleet Ships:  %d\n", race.MaxFleetShips)
}

// maskPassword hides the password of a connection URL for display
func maskPassword(raw string) string {
	u, err := url.Parse(raw)
	if err != nil || u.User == nil {
		return raw
	}
	if _, ok := u.User.Password(); ok {
		u.User = url.UserPassword(u.User.Username(), "****")
	}
	return u.String()
}
