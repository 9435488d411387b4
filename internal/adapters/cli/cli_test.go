package cli_test

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/realmfleet-go/internal/adapters/cli"
)

const skirmish = "../scenario/testdata/skirmish.yaml"

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	return runWithDatabase(t, ":memory:", args...)
}

func runWithDatabase(t *testing.T, path string, args ...string) (string, error) {
	t.Helper()
	t.Setenv("RF_DATABASE_TYPE", "sqlite")
	t.Setenv("RF_DATABASE_PATH", path)
	t.Setenv("RF_LOGGING_LEVEL", "error")

	var out bytes.Buffer
	root := cli.NewRootCommand()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestSimulate_PrintsOneLinePerAIRealmPerTurn(t *testing.T) {
	// Act
	out, err := run(t, "simulate", "--scenario", skirmish, "--turns", "3", "--journal")

	// Assert
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[0], "turn 1 | Terrans |"))
	assert.True(t, strings.HasPrefix(lines[2], "turn 3 | Terrans |"))
	assert.NotContains(t, out, "Rivals")
}

func TestSimulate_UsesScenarioTurns(t *testing.T) {
	out, err := run(t, "simulate", "--scenario", skirmish)

	require.NoError(t, err)
	assert.Len(t, strings.Split(strings.TrimSpace(out), "\n"), 6)
}

func TestSimulate_Errors(t *testing.T) {
	_, err := run(t, "simulate")
	assert.ErrorContains(t, err, `required flag(s) "scenario" not set`)

	_, err = run(t, "simulate", "--scenario", "missing.yaml")
	assert.ErrorContains(t, err, "failed to read scenario file")
}

func TestJournalShow_ReadsBackSimulation(t *testing.T) {
	// Arrange
	path := filepath.Join(t.TempDir(), "journal.db")
	_, err := runWithDatabase(t, path, "simulate", "--scenario", skirmish, "--turns", "2", "--journal")
	require.NoError(t, err)

	// Act
	out, err := runWithDatabase(t, path, "journal", "show", "--realm", "Terrans")

	// Assert
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.True(t, strings.HasPrefix(lines[0], "Realm Terrans at turn 2:"), lines[0])
	assert.Contains(t, out, "fleet=Guard")
	require.Greater(t, len(lines), 1)

	// Act - one mission by id
	id := strings.Fields(lines[1])[0]
	out, err = runWithDatabase(t, path, "journal", "show", "--mission", id)

	// Assert
	require.NoError(t, err)
	assert.Contains(t, out, "Mission "+id)
	assert.Contains(t, out, "Realm:            Terrans")
}

func TestJournalShow_Errors(t *testing.T) {
	_, err := run(t, "journal", "show")
	assert.ErrorContains(t, err, "exactly one of --realm or --mission")

	_, err = run(t, "journal", "show", "--mission", "missing")
	assert.ErrorContains(t, err, "mission not found")
}

func TestConfigShow(t *testing.T) {
	t.Setenv("RF_AI_DETOUR_RADIUS", "12")

	out, err := run(t, "config", "show")

	require.NoError(t, err)
	assert.Contains(t, out, "Detour Radius:    12")
	assert.Contains(t, out, "Path:             :memory:")
	assert.Contains(t, out, "Endpoint:         localhost:9090/metrics")
}
