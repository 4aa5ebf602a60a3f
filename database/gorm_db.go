package database

import (
	"database/sql"
	"fmt"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/camden-git/metagridexport/logging"
	"github.com/camden-git/metagridexport/models"
)

// InitGormDB wraps an already opened connection pool in a GORM instance so
// both access paths share the same connections.
func InitGormDB(sqlDB *sql.DB) (*gorm.DB, error) {
	gormLog := logging.WithComponent("gorm")
	gormLogger := logger.New(
		&gormLog,
		logger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  false,
		},
	)

	db, err := gorm.Open(sqlite.New(sqlite.Config{Conn: sqlDB}), &gorm.Config{
		Logger: gormLogger,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database using GORM: %w", err)
	}
	return db, nil
}

// AutoMigrateModels creates the subset of CMS tables the export reads.
// Used for local databases and tests, a real CMS database already has them.
func AutoMigrateModels(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.Tree{},
		&models.UserGroup{},
		&models.User{},
		&models.Setting{},
		&models.Person{},
	)
	if err != nil {
		return fmt.Errorf("GORM AutoMigrate failed: %w", err)
	}
	logging.Debug().Msg("GORM AutoMigrate completed")
	return nil
}
