package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/camden-git/metagridexport/database"
	"github.com/camden-git/metagridexport/metrics"
	"github.com/camden-git/metagridexport/models"
)

var ErrInvalidOffset = errors.New("start must not be negative")

// SQLPersonRepository reads persons through database/sql so the query stays
// a single bounded SELECT.
type SQLPersonRepository struct {
	DB           *sql.DB
	QueryTimeout time.Duration
}

// NewSQLPersonRepository creates a new instance of SQLPersonRepository
func NewSQLPersonRepository(db *sql.DB, queryTimeout time.Duration) *SQLPersonRepository {
	return &SQLPersonRepository{DB: db, QueryTimeout: queryTimeout}
}

// List returns up to limit persons of the tree, skipping the first start
// matches. A start past the end yields an empty slice.
func (r *SQLPersonRepository) List(ctx context.Context, treeID uint, start, limit int) ([]models.Person, error) {
	if limit <= 0 {
		return nil, database.ErrInvalidLimit
	}
	if start < 0 {
		return nil, ErrInvalidOffset
	}

	if r.QueryTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.QueryTimeout)
		defer cancel()
	}

	began := time.Now()
	persons, err := database.ListPersons(ctx, r.DB, database.PersonPage{
		TreeID: treeID,
		Offset: uint64(start),
		Limit:  uint64(limit),
	})
	metrics.RecordDBQuery("list_persons", time.Since(began), err)
	if err != nil {
		return nil, fmt.Errorf("failed to list persons of tree %d: %w", treeID, err)
	}
	return persons, nil
}
