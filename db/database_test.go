package db

import (
	"path/filepath"
	"testing"

	"storefront/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestOpen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "shop.db")

	conn, err := Open(path, zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB, _ := conn.DB()
		sqlDB.Close()
	})

	assert.FileExists(t, path)
	for _, table := range []any{&models.Product{}, &models.ProductCategory{}, &models.Subcategory{}, "product_subcategories"} {
		assert.True(t, conn.Migrator().HasTable(table), "%v", table)
	}
}

func TestBaseAssignsID(t *testing.T) {
	conn, err := Open(filepath.Join(t.TempDir(), "shop.db"), zap.NewNop())
	require.NoError(t, err)

	category := models.ProductCategory{Name: "Shoes", Active: true}
	require.NoError(t, conn.Create(&category).Error)
	assert.Len(t, category.ID, 36)

	preset := models.ProductCategory{Base: models.Base{ID: "fixed-id"}, Name: "Hats"}
	require.NoError(t, conn.Create(&preset).Error)
	assert.Equal(t, "fixed-id", preset.ID)
}
