// Package testdb opens throwaway CMS databases for tests.
package testdb

import (
	"database/sql"
	"path/filepath"
	"testing"

	"gorm.io/gorm"

	"github.com/camden-git/metagridexport/database"
	"github.com/camden-git/metagridexport/models"
)

// Open creates a migrated sqlite database in a temporary directory. Both
// handles share one pool and are closed when the test ends.
func Open(t *testing.T) (*sql.DB, *gorm.DB) {
	t.Helper()

	sqlDB, err := database.InitDB(filepath.Join(t.TempDir(), "humo.db"))
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}
	t.Cleanup(func() { sqlDB.Close() })

	gormDB, err := database.InitGormDB(sqlDB)
	if err != nil {
		t.Fatalf("open gorm: %v", err)
	}
	if err := database.AutoMigrateModels(gormDB); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return sqlDB, gormDB
}

// Create inserts each value, failing the test on the first error.
func Create(t *testing.T, db *gorm.DB, values ...interface{}) {
	t.Helper()
	for _, v := range values {
		if err := db.Create(v).Error; err != nil {
			t.Fatalf("seed %T: %v", v, err)
		}
	}
}

// CreateGuest inserts the guest user together with its group.
func CreateGuest(t *testing.T, db *gorm.DB, group models.UserGroup) {
	t.Helper()
	if group.Name == "" {
		group.Name = "guest"
	}
	Create(t, db, &group)
	Create(t, db, &models.User{Name: "guest", GroupID: group.ID})
}

// Person returns an exportable person of tree treeID.
func Person(treeID uint, gedcom, firstName, lastName string) *models.Person {
	return &models.Person{
		TreeID:       treeID,
		GedcomNumber: gedcom,
		FirstName:    firstName,
		LastName:     lastName,
	}
}
