package config

import "time"

// SetDefaults sets default values for all configuration fields
func SetDefaults(cfg *Config) {
	// Database defaults: a local sqlite journal
	if cfg.Database.Type == "" {
		cfg.Database.Type = "sqlite"
	}
	if cfg.Database.Type == "sqlite" && cfg.Database.Path == "" {
		cfg.Database.Path = "realmfleet.db"
	}
	if cfg.Database.Host == "" {
		cfg.Database.Host = "localhost"
	}
	if cfg.Database.Port == 0 {
		cfg.Database.Port = 5432
	}
	if cfg.Database.User == "" {
		cfg.Database.User = "realmfleet"
	}
	if cfg.Database.Name == "" {
		cfg.Database.Name = "realmfleet"
	}
	if cfg.Database.SSLMode == "" {
		cfg.Database.SSLMode = "disable"
	}
	if cfg.Database.Pool.MaxOpen == 0 {
		cfg.Database.Pool.MaxOpen = 10
	}
	if cfg.Database.Pool.MaxIdle == 0 {
		cfg.Database.Pool.MaxIdle = 2
	}
	if cfg.Database.Pool.MaxLifetime == 0 {
		cfg.Database.Pool.MaxLifetime = 5 * time.Minute
	}

	// Logging defaults
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = "text"
	}
	if cfg.Logging.Output == "" {
		cfg.Logging.Output = "stderr"
	}

	// Metrics defaults
	if cfg.Metrics.Host == "" {
		cfg.Metrics.Host = "localhost"
	}
	if cfg.Metrics.Port == 0 {
		cfg.Metrics.Port = 9090
	}
	if cfg.Metrics.Path == "" {
		cfg.Metrics.Path = "/metrics"
	}

	// AI defaults
	if cfg.AI.DetourRadius == 0 {
		cfg.AI.DetourRadius = 7
	}
	if cfg.AI.ScanRadius == 0 {
		cfg.AI.ScanRadius = 2
	}
	if cfg.AI.HostileSearchRadius == 0 {
		cfg.AI.HostileSearchRadius = 6
	}
	if cfg.AI.FirstColonistThreshold == 0 {
		cfg.AI.FirstColonistThreshold = 2
	}
	if cfg.AI.NextColonistThreshold == 0 {
		cfg.AI.NextColonistThreshold = 3
	}
	if cfg.AI.EspionageBonus == 0 {
		cfg.AI.EspionageBonus = 5
	}
	if cfg.AI.Race.ExploringThreshold == 0 {
		cfg.AI.Race.ExploringThreshold = 10
	}
	if cfg.AI.Race.DefenseRefresh == 0 {
		cfg.AI.Race.DefenseRefresh = 30
	}
	if cfg.AI.Race.AttackMinBombersTroopers == 0 {
		cfg.AI.Race.AttackMinBombersTroopers = 1
	}
	if cfg.AI.Race.AttackMinMilitaryShips == 0 {
		cfg.AI.Race.AttackMinMilitaryShips = 2
	}
	if cfg.AI.Race.MaxFleetShips == 0 {
		cfg.AI.Race.MaxFleetShips = 10
	}
}
