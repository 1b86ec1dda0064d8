package repositories

import (
	"fmt"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/papertrade/folio/internal/db"
	"github.com/papertrade/folio/internal/models"
)

// setupTestDB opens an in-memory sqlite database with the core schema. Each
// test gets its own shared-cache name so parallel tests do not collide.
func setupTestDB(t *testing.T) *db.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	gormDB, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}

	if err := gormDB.AutoMigrate(
		&models.Position{},
		&models.PriceObservation{},
		&models.PortfolioSnapshot{},
	); err != nil {
		t.Fatalf("failed to migrate schema: %v", err)
	}

	database := &db.DB{DB: gormDB}
	t.Cleanup(func() { _ = database.Close() })
	return database
}
