package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	_ "github.com/mattn/go-sqlite3"

	"github.com/camden-git/metagridexport/logging"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Question)

// InitDB opens the CMS database. The export only reads from it, the
// schema is owned by the CMS.
func InitDB(dataSourceName string) (*sql.DB, error) {
	db, err := sql.Open("sqlite3", dataSourceName)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(time.Hour)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to reach database %s: %w", dataSourceName, err)
	}

	logging.Info().Str("path", dataSourceName).Msg("database opened")
	return db, nil
}
