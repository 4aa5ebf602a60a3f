package repository

import (
	"context"
	"errors"

	"github.com/camden-git/metagridexport/models"
)

// ErrNotFound is returned when a looked up row does not exist.
var ErrNotFound = errors.New("record not found")

// PersonRepository reads pages of exportable persons
type PersonRepository interface {
	List(ctx context.Context, treeID uint, start, limit int) ([]models.Person, error)
}

// TreeRepository resolves the tree named by a request
type TreeRepository interface {
	GetByPrefix(ctx context.Context, prefix string) (*models.Tree, error)
}

// SettingsRepository reads CMS configuration: the acting user's group
// privacy settings and site wide options
type SettingsRepository interface {
	GetVisibility(ctx context.Context, userName string) (models.VisibilitySettings, error)
	GetSetting(ctx context.Context, variable string) (string, error)
}
