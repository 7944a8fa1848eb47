// Package testutil opens throwaway sqlite-backed stores for tests.
package testutil

import (
	"path/filepath"
	"testing"

	"storefront/internal/database"
	"storefront/internal/models"
	"storefront/internal/repository"
	"storefront/internal/store"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm/logger"
)

// NewStore returns a store on a fresh sqlite file in the test's temp dir.
func NewStore(t *testing.T) *store.Store {
	t.Helper()
	return OpenStore(t, filepath.Join(t.TempDir(), "store.db"))
}

// OpenStore opens (or reopens) the sqlite store at path. Reopening the same
// path simulates a process restart.
func OpenStore(t *testing.T, path string) *store.Store {
	t.Helper()

	db, err := database.Initialize("sqlite", path, logger.Silent)
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Collection{}))
	t.Cleanup(func() { database.Close(db) })

	return store.New(repository.NewCollectionRepository(db), zap.NewNop())
}
