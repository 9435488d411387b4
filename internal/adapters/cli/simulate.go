package cli

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"github.com/andrescamacho/realmfleet-go/internal/adapters/metrics"
	"github.com/andrescamacho/realmfleet-go/internal/adapters/persistence"
	"github.com/andrescamacho/realmfleet-go/internal/adapters/scenario"
	"github.com/andrescamacho/realmfleet-go/internal/application/common"
	"github.com/andrescamacho/realmfleet-go/internal/application/missions"
	"github.com/andrescamacho/realmfleet-go/internal/application/turn"
	"github.com/andrescamacho/realmfleet-go/internal/infrastructure/config"
	"github.com/andrescamacho/realmfleet-go/internal/infrastructure/database"
	"github.com/andrescamacho/realmfleet-go/internal/infrastructure/logging"
)

const defaultTurns = 10

// NewSimulateCommand creates the simulate command
func NewSimulateCommand() *cobra.Command {
	var (
		scenarioPath string
		turns        int
		journal      bool
	)

	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Run AI turns over a scenario",
		Long: `Load a YAML scenario and process AI turns, printing one report line per
realm per turn.

The turn count comes from --turns, then the scenario's "turns" key, then 10.
With --journal the mission list of every realm is stored after each turn in
the configured database.

Examples:
  realmfleet simulate --scenario scenarios/skirmish.yaml
  realmfleet simulate --scenario scenarios/skirmish.yaml --turns 50 --journal`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig(configPath)
			if err != nil {
				return err
			}
			if verbose {
				cfg.Logging.Level = "debug"
			}
			return runSimulation(cmd.Context(), cmd.OutOrStdout(), cfg, scenarioPath, turns, journal)
		},
	}

	cmd.Flags().StringVar(&scenarioPath, "scenario", "", "Path to the scenario YAML file (required)")
	cmd.Flags().IntVar(&turns, "turns", 0, "Number of turns to process")
	cmd.Flags().BoolVar(&journal, "journal", false, "Record missions in the database after each turn")
	_ = cmd.MarkFlagRequired("scenario")

	return cmd
}

func runSimulation(ctx context.Context, out io.Writer, cfg *config.Config, scenarioPath string, turns int, journal bool) error {
	if ctx == nil {
		ctx = context.Background()
	}

	logger, closer, err := logging.New(&cfg.Logging)
	if err != nil {
		return err
	}
	defer closer.Close()
	ctx = common.WithLogger(ctx, logger)

	world, err := scenario.LoadFile(scenarioPath, cfg.AI.Race.Race)
	if err != nil {
		return err
	}
	if turns <= 0 {
		turns = world.Turns
	}
	if turns <= 0 {
		turns = defaultTurns
	}

	var recorder missions.MetricsRecorder
	var requestMetrics *metrics.RequestMetricsCollector
	if cfg.Metrics.Enabled {
		metrics.InitRegistry()
		missionMetrics := metrics.NewMissionMetricsCollector()
		requestMetrics = metrics.NewRequestMetricsCollector()
		if err := missionMetrics.Register(); err != nil {
			return fmt.Errorf("failed to register mission metrics: %w", err)
		}
		if err := requestMetrics.Register(); err != nil {
			return fmt.Errorf("failed to register request metrics: %w", err)
		}
		recorder = missionMetrics

		srv, err := metrics.NewServer(cfg.Metrics.Address(), cfg.Metrics.Path)
		if err != nil {
			return err
		}
		go func() {
			if err := srv.Serve(); err != nil {
				logger.Log("ERROR", fmt.Sprintf("[Metrics] server stopped: %v", err), nil)
			}
		}()
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = srv.Shutdown(shutdownCtx)
		}()
		logger.Log("INFO", "[Metrics] serving on "+srv.Addr()+cfg.Metrics.Path, nil)
	}

	var missionJournal turn.MissionJournal
	if journal {
		db, err := openJournal(&cfg.Database)
		if err != nil {
			return err
		}
		defer database.Close(db)
		missionJournal = persistence.NewGormMissionRepository(db)
	}

	mediator := common.NewMediator()
	mediator.Use(common.LoggingMiddleware)
	mediator.Use(metrics.PrometheusMiddleware(requestMetrics))
	handler := turn.NewProcessTurnHandler(cfg.AI.MissionConfig(), cfg.AI.ScanRadius, recorder, missionJournal)
	if err := common.RegisterHandler[*turn.ProcessTurnCommand](mediator, handler); err != nil {
		return err
	}

	logger.Log("INFO", fmt.Sprintf("[Simulate] %s: %d realms, %d turns", world.Name, len(world.Realms), turns), map[string]interface{}{
		"scenario": scenarioPath,
		"journal":  journal,
	})

	for n := 1; n <= turns; n++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		response, err := mediator.Send(ctx, &turn.ProcessTurnCommand{Turn: n, Map: world.Map, Realms: world.Realms})
		if err != nil {
			return err
		}
		report, ok := response.(*turn.TurnReport)
		if !ok {
			return fmt.Errorf("unexpected response type %T", response)
		}
		for _, line := range report.Lines() {
			fmt.Fprintln(out, line)
		}
	}
	return nil
}

func openJournal(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	db, err := database.NewConnection(cfg)
	if err != nil {
		return nil, err
	}
	if err := database.AutoMigrate(db); err != nil {
		_ = database.Close(db)
		return nil, fmt.Errorf("failed to migrate journal: %w", err)
	}
	return db, nil
}
