package metrics_test

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/realmfleet-go/internal/adapters/metrics"
	"github.com/andrescamacho/realmfleet-go/internal/application/common"
	"github.com/andrescamacho/realmfleet-go/internal/application/missions"
)

func initRegistry(t *testing.T) {
	t.Helper()
	metrics.InitRegistry()
	t.Cleanup(func() { metrics.Registry = nil })
}

func TestMissionMetricsCollector_CountsEvents(t *testing.T) {
	// Arrange
	initRegistry(t)
	collector := metrics.NewMissionMetricsCollector()
	require.NoError(t, collector.Register())
	var recorder missions.MetricsRecorder = collector

	// Act
	recorder.RecordTransition("DEFEND", "BUILDING", "TREKKING")
	recorder.RecordTransition("DEFEND", "BUILDING", "TREKKING")
	recorder.RecordDetourSearch("Terrans", false)
	recorder.RecordRemoval("EXPLORE", missions.RemovalStale)
	collector.RecordRealmState("Terrans", 4, 3, 120)

	// Assert
	expected := `
# HELP realmfleet_ai_mission_transitions_total Total number of mission phase transitions
# TYPE realmfleet_ai_mission_transitions_total counter
realmfleet_ai_mission_transitions_total{from="BUILDING",to="TREKKING",type="DEFEND"} 2
# HELP realmfleet_ai_detour_searches_total Total number of bounded detour searches by outcome
# TYPE realmfleet_ai_detour_searches_total counter
realmfleet_ai_detour_searches_total{reached="false",realm="Terrans"} 1
# HELP realmfleet_ai_missions_removed_total Total number of missions removed by reason
# TYPE realmfleet_ai_missions_removed_total counter
realmfleet_ai_missions_removed_total{reason="stale",type="EXPLORE"} 1
# HELP realmfleet_ai_credits Realm credit balance after the last processed turn
# TYPE realmfleet_ai_credits gauge
realmfleet_ai_credits{realm="Terrans"} 120
`
	assert.NoError(t, testutil.GatherAndCompare(metrics.Registry, strings.NewReader(expected),
		"realmfleet_ai_mission_transitions_total",
		"realmfleet_ai_detour_searches_total",
		"realmfleet_ai_missions_removed_total",
		"realmfleet_ai_credits",
	))
}

func TestMissionMetricsCollector_RegisterWithoutRegistry(t *testing.T) {
	metrics.Registry = nil
	assert.False(t, metrics.IsEnabled())
	assert.NoError(t, metrics.NewMissionMetricsCollector().Register())
}

type failCommand struct{}

func TestPrometheusMiddleware_RecordsOutcome(t *testing.T) {
	initRegistry(t)
	collector := metrics.NewRequestMetricsCollector()
	require.NoError(t, collector.Register())
	mw := metrics.PrometheusMiddleware(collector)

	ok := func(ctx context.Context, request common.Request) (common.Response, error) { return "ok", nil }
	fail := func(ctx context.Context, request common.Request) (common.Response, error) { return nil, errors.New("boom") }

	_, err := mw(context.Background(), &failCommand{}, ok)
	require.NoError(t, err)
	_, err = mw(context.Background(), &failCommand{}, fail)
	require.Error(t, err)

	count, err := testutil.GatherAndCount(metrics.Registry, "realmfleet_ai_requests_total")
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestServer_ExposesRegistry(t *testing.T) {
	initRegistry(t)
	collector := metrics.NewMissionMetricsCollector()
	require.NoError(t, collector.Register())
	collector.RecordRemoval("ATTACK", missions.RemovalCompleted)

	srv, err := metrics.NewServer("127.0.0.1:0", "/metrics")
	require.NoError(t, err)
	go func() { _ = srv.Serve() }()
	t.Cleanup(func() { _ = srv.Shutdown(context.Background()) })

	resp, err := http.Get("http://" + srv.Addr() + "/metrics")
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), `realmfleet_ai_missions_removed_total{reason="completed",type="ATTACK"} 1`)
}
