package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/andrescamacho/realmfleet-go/internal/adapters/persistence"
	"github.com/andrescamacho/realmfleet-go/internal/infrastructure/config"
	"github.com/andrescamacho/realmfleet-go/internal/infrastructure/database"
)

// NewJournalCommand creates the journal command with subcommands
func NewJournalCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "journal",
		Short: "Inspect the mission journal",
		Long: `Inspect missions recorded by "simulate --journal".

The journal lives in the configured database, so it outlasts the run only
with a sqlite file or postgres.

Examples:
  RF_DATABASE_PATH=realmfleet.db realmfleet journal show --realm Terrans
  realmfleet journal show --mission 5f0c6a9e-...`,
	}

	cmd.AddCommand(newJournalShowCommand())

	return cmd
}

func newJournalShowCommand() *cobra.Command {
	var (
		realmName string
		missionID string
	)

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show the open missions of a realm, or one mission by id",
		RunE: func(cmd *cobra.Command, args []string) error {
			if (realmName == "") == (missionID == "") {
				return fmt.Errorf("exactly one of --realm or --mission is required")
			}
			cfg, err := config.LoadConfig(configPath)
			if err != nil {
				return err
			}
			db, err := openJournal(&cfg.Database)
			if err != nil {
				return err
			}
			defer database.Close(db)

			repo := persistence.NewGormMissionRepository(db)
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			if missionID != "" {
				return showMission(ctx, cmd.OutOrStdout(), repo, missionID)
			}
			return showRealm(ctx, cmd.OutOrStdout(), repo, realmName)
		},
	}

	cmd.Flags().StringVar(&realmName, "realm", "", "Realm whose open missions to list")
	cmd.Flags().StringVar(&missionID, "mission", "", "Mission id to show")

	return cmd
}

func showRealm(ctx context.Context, out io.Writer, repo *persistence.GormMissionRepository, realmName string) error {
	turn, err := repo.LatestTurn(ctx, realmName)
	if err != nil {
		return err
	}
	open, err := repo.FindOpenByRealm(ctx, realmName)
	if err != nil {
		return err
	}
	removed, err := repo.CountRemovedAt(ctx, realmName, turn)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "Realm %s at turn %d: %d open missions, %d removed this turn\n", realmName, turn, len(open), removed)
	for _, m := range open {
		fleet := m.FleetName()
		if fleet == "" {
			fleet = "-"
		}
		fmt.Fprintf(out, "  %s  %s/%s  fleet=%s  target=%s\n", m.ID(), m.Type(), m.Phase(), fleet, m.Target())
	}
	return nil
}

func showMission(ctx context.Context, out io.Writer, repo *persistence.GormMissionRepository, id string) error {
	model, err := repo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "Mission %s\n", model.ID)
	fmt.Fprintf(out, "  Realm:            %s\n", model.Realm)
	fmt.Fprintf(out, "  Type:             %s\n", model.Type)
	fmt.Fprintf(out, "  Phase:            %s\n", model.Phase)
	fmt.Fprintf(out, "  Target:           (%d,%d)\n", model.TargetX, model.TargetY)
	fmt.Fprintf(out, "  Fleet:            %s\n", model.FleetName)
	fmt.Fprintf(out, "  Last Open Turn:   %d\n", model.Turn)
	if model.RemovedAtTurn != nil {
		fmt.Fprintf(out, "  Removed At Turn:  %d\n", *model.RemovedAtTurn)
	}
	return nil
}
