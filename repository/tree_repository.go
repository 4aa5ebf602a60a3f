package repository

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/camden-git/metagridexport/models"
	"gorm.io/gorm"
)

type GormTreeRepository struct {
	db *gorm.DB
}

func NewGormTreeRepository(db *gorm.DB) *GormTreeRepository {
	return &GormTreeRepository{db: db}
}

// GetByPrefix finds a tree by its prefix. An all-digit value is treated as
// a tree id, like the CMS tree helper does.
func (r *GormTreeRepository) GetByPrefix(ctx context.Context, prefix string) (*models.Tree, error) {
	if prefix == "" {
		return nil, ErrNotFound
	}

	query := r.db.WithContext(ctx)
	if id, err := strconv.ParseUint(prefix, 10, 64); err == nil {
		query = query.Where("tree_id = ?", id)
	} else {
		query = query.Where("tree_prefix = ?", prefix)
	}

	var tree models.Tree
	err := query.First(&tree).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get tree by prefix %q: %w", prefix, err)
	}
	return &tree, nil
}
