package db

import (
	"fmt"
	"os"
	"path/filepath"

	"storefront/models"

	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// Open connects to the sqlite database at dbPath, creating its directory when
// needed, and migrates the schema.
func Open(dbPath string, log *zap.Logger) (*gorm.DB, error) {
	// Ensure the directory exists (create if it doesn't)
	dir := filepath.Dir(dbPath)
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("create database directory: %w", err)
		}
	}

	// References are checked by the use-cases, soft deletes never cascade.
	conn, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger:                                   gormlogger.Default.LogMode(gormlogger.Silent),
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}
	log.Info("database connected", zap.String("path", dbPath))

	if err := Migrate(conn); err != nil {
		return nil, err
	}
	return conn, nil
}

func Migrate(conn *gorm.DB) error {
	if err := conn.AutoMigrate(&models.ProductCategory{}, &models.Subcategory{}, &models.Product{}); err != nil {
		return fmt.Errorf("migrate schema: %w", err)
	}
	return nil
}
