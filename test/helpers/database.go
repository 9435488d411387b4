package helpers

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/andrescamacho/realmfleet-go/internal/adapters/persistence"
	"github.com/andrescamacho/realmfleet-go/internal/infrastructure/database"
)

// NewTestDB opens a migrated sqlite :memory: database, closed with the test
func NewTestDB(t testing.TB) *gorm.DB {
	t.Helper()
	db, err := database.NewTestConnection()
	require.NoError(t, err, "open test database")
	t.Cleanup(func() { _ = database.Close(db) })
	return db
}

// NewTestJournal returns a mission journal over its own test database
func NewTestJournal(t testing.TB) *persistence.GormMissionRepository {
	t.Helper()
	return persistence.NewGormMissionRepository(NewTestDB(t))
}
