package testutil

import (
	"path/filepath"
	"testing"

	"storefront/db"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// NewDB opens a migrated sqlite database in a per-test temp directory.
func NewDB(t testing.TB) *gorm.DB {
	t.Helper()

	conn, err := db.Open(filepath.Join(t.TempDir(), "test.db"), zap.NewNop())
	require.NoError(t, err)

	t.Cleanup(func() {
		if sqlDB, err := conn.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return conn
}
