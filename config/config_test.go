package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing.env")

	t.Run("Defaults", func(t *testing.T) {
		cfg, err := Load([]string{"--env-file", missing})
		require.NoError(t, err)

		assert.Equal(t, ":3000", cfg.Addr)
		assert.Equal(t, "database.db", cfg.DatabasePath)
		assert.Equal(t, "uploads", cfg.UploadDir)
		assert.Equal(t, 100, cfg.PageLimitMax)
		assert.Equal(t, []string{"*"}, cfg.CORSOrigins)
		assert.False(t, cfg.IsDevelopment())
	})

	t.Run("Environment", func(t *testing.T) {
		t.Setenv("STOREFRONT_APP_ENV", "development")
		t.Setenv("STOREFRONT_PAGE_LIMIT_MAX", "25")
		t.Setenv("STOREFRONT_CORS_ORIGINS", "http://a.test,http://b.test")

		cfg, err := Load([]string{"--env-file", missing})
		require.NoError(t, err)

		assert.True(t, cfg.IsDevelopment())
		assert.Equal(t, 25, cfg.PageLimitMax)
		assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.CORSOrigins)
	})

	t.Run("EnvFile", func(t *testing.T) {
		envFile := filepath.Join(t.TempDir(), "test.env")
		require.NoError(t, os.WriteFile(envFile, []byte("STOREFRONT_UPLOAD_DIR=/tmp/images\n"), 0o600))
		t.Cleanup(func() { os.Unsetenv("STOREFRONT_UPLOAD_DIR") })

		cfg, err := Load([]string{"--env-file", envFile})
		require.NoError(t, err)

		assert.Equal(t, "/tmp/images", cfg.UploadDir)
	})

	t.Run("FlagsWin", func(t *testing.T) {
		t.Setenv("STOREFRONT_ADDR", ":9000")

		cfg, err := Load([]string{"--env-file", missing, "--addr", ":8080", "--database-path", "shop.db"})
		require.NoError(t, err)

		assert.Equal(t, ":8080", cfg.Addr)
		assert.Equal(t, "shop.db", cfg.DatabasePath)
	})

	t.Run("InvalidPageLimit", func(t *testing.T) {
		t.Setenv("STOREFRONT_PAGE_LIMIT_MAX", "0")

		_, err := Load([]string{"--env-file", missing})
		assert.Error(t, err)
	})

	t.Run("UnknownFlag", func(t *testing.T) {
		_, err := Load([]string{"--nope"})
		assert.Error(t, err)
	})
}
