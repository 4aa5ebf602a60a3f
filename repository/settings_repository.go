package repository

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/camden-git/metagridexport/models"
	"gorm.io/gorm"
)

type GormSettingsRepository struct {
	db *gorm.DB
}

func NewGormSettingsRepository(db *gorm.DB) *GormSettingsRepository {
	return &GormSettingsRepository{db: db}
}

// GetVisibility loads the group settings of the named user.
func (r *GormSettingsRepository) GetVisibility(ctx context.Context, userName string) (models.VisibilitySettings, error) {
	var user models.User
	err := r.db.WithContext(ctx).Preload("Group").Where("user_name = ?", userName).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.VisibilitySettings{}, fmt.Errorf("user %q: %w", userName, ErrNotFound)
		}
		return models.VisibilitySettings{}, fmt.Errorf("failed to get user %q: %w", userName, err)
	}
	if user.Group.ID == 0 {
		return models.VisibilitySettings{}, fmt.Errorf("group %d of user %q: %w", user.GroupID, userName, ErrNotFound)
	}

	return models.VisibilitySettings{
		HiddenTrees: ParseHiddenTrees(user.Group.HideTrees),
		HideTotally: user.Group.PersHideTotallyAct == models.FlagEnabled,
		Marker:      user.Group.PersHideTotallyValue,
	}, nil
}

// GetSetting returns the value of a humo_settings variable, or "" when the
// variable is not set.
func (r *GormSettingsRepository) GetSetting(ctx context.Context, variable string) (string, error) {
	var setting models.Setting
	err := r.db.WithContext(ctx).Where("setting_variable = ?", variable).First(&setting).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil
		}
		return "", fmt.Errorf("failed to get setting %s: %w", variable, err)
	}
	return setting.Value, nil
}

// ParseHiddenTrees turns the ';' separated group_hide_trees column into a
// set. Entries that are not tree ids are skipped.
func ParseHiddenTrees(raw string) map[uint]struct{} {
	hidden := make(map[uint]struct{})
	for _, part := range strings.Split(raw, ";") {
		id, err := strconv.ParseUint(strings.TrimSpace(part), 10, 64)
		if err != nil {
			continue
		}
		hidden[uint(id)] = struct{}{}
	}
	return hidden
}
