package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
)

// MissionMetricsCollector handles mission lifecycle and detour metrics.
// It satisfies missions.MetricsRecorder.
type MissionMetricsCollector struct {
	transitionsTotal *prometheus.CounterVec
	detourSearches   *prometheus.CounterVec
	removalsTotal    *prometheus.CounterVec

	// Per-turn gauges
	openMissions *prometheus.GaugeVec
	fleets       *prometheus.GaugeVec
	credits      *prometheus.GaugeVec
}

// NewMissionMetricsCollector creates a new mission metrics collector
func NewMissionMetricsCollector() *MissionMetricsCollector {
	return &MissionMetricsCollector{
		transitionsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "mission_transitions_total",
				Help:      "Total number of mission phase transitions",
			},
			[]string{"type", "from", "to"},
		),

		detourSearches: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "detour_searches_total",
				Help:      "Total number of bounded detour searches by outcome",
			},
			[]string{"realm", "reached"},
		),

		removalsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "missions_removed_total",
				Help:      "Total number of missions removed by reason",
			},
			[]string{"type", "reason"},
		),

		openMissions: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "open_missions",
				Help:      "Open missions per realm after the last processed turn",
			},
			[]string{"realm"},
		),

		fleets: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "fleets",
				Help:      "Fleets per realm after the last processed turn",
			},
			[]string{"realm"},
		),

		credits: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "credits",
				Help:      "Realm credit balance after the last processed turn",
			},
			[]string{"realm"},
		),
	}
}

// Register registers all mission metrics with the Prometheus registry
func (c *MissionMetricsCollector) Register() error {
	return register(
		c.transitionsTotal,
		c.detourSearches,
		c.removalsTotal,
		c.openMissions,
		c.fleets,
		c.credits,
	)
}

// RecordTransition records a mission phase change
func (c *MissionMetricsCollector) RecordTransition(missionType, from, to string) {
	c.transitionsTotal.WithLabelValues(missionType, from, to).Inc()
}

// RecordDetourSearch records a new bounded search and whether it reached the target
func (c *MissionMetricsCollector) RecordDetourSearch(realmName string, reached bool) {
	c.detourSearches.WithLabelValues(realmName, strconv.FormatBool(reached)).Inc()
}

// RecordRemoval records a mission leaving the realm's list
func (c *MissionMetricsCollector) RecordRemoval(missionType, reason string) {
	c.removalsTotal.WithLabelValues(missionType, reason).Inc()
}

// RecordRealmState sets the per-realm gauges at the end of a turn
func (c *MissionMetricsCollector) RecordRealmState(realmName string, missions, fleets, credits int) {
	c.openMissions.WithLabelValues(realmName).Set(float64(missions))
	c.fleets.WithLabelValues(realmName).Set(float64(fleets))
	c.credits.WithLabelValues(realmName).Set(float64(credits))
}
