package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/camden-git/metagridexport/database"
	"github.com/camden-git/metagridexport/models"
	"github.com/camden-git/metagridexport/repository"
	"github.com/camden-git/metagridexport/testdb"
)

func TestSQLPersonRepositoryList(t *testing.T) {
	sqlDB, gormDB := testdb.Open(t)
	testdb.Create(t, gormDB,
		testdb.Person(1, "I1", "Johannes", "Berger"),
		testdb.Person(1, "I2", "Cornelis", "Visser"),
	)
	repo := repository.NewSQLPersonRepository(sqlDB, time.Second)

	persons, err := repo.List(context.Background(), 1, 0, 5000)
	require.NoError(t, err)
	assert.Len(t, persons, 2)

	persons, err = repo.List(context.Background(), 1, 2, 10)
	require.NoError(t, err)
	assert.Empty(t, persons)
}

func TestSQLPersonRepositoryRejectsBadWindow(t *testing.T) {
	sqlDB, _ := testdb.Open(t)
	repo := repository.NewSQLPersonRepository(sqlDB, 0)

	_, err := repo.List(context.Background(), 1, 0, 0)
	assert.ErrorIs(t, err, database.ErrInvalidLimit)

	_, err = repo.List(context.Background(), 1, 0, -1)
	assert.ErrorIs(t, err, database.ErrInvalidLimit)

	_, err = repo.List(context.Background(), 1, -1, 10)
	assert.ErrorIs(t, err, repository.ErrInvalidOffset)
}

func TestSQLPersonRepositoryQueryFailure(t *testing.T) {
	sqlDB, _ := testdb.Open(t)
	_, err := sqlDB.Exec(`DROP TABLE humo_persons`)
	require.NoError(t, err)

	_, err = repository.NewSQLPersonRepository(sqlDB, time.Second).List(context.Background(), 1, 0, 10)
	assert.Error(t, err)
}

func TestGormTreeRepositoryGetByPrefix(t *testing.T) {
	_, gormDB := testdb.Open(t)
	testdb.Create(t, gormDB, &models.Tree{Prefix: "humo_"}, &models.Tree{Prefix: "humo2_"})
	repo := repository.NewGormTreeRepository(gormDB)

	tree, err := repo.GetByPrefix(context.Background(), "humo2_")
	require.NoError(t, err)
	assert.Equal(t, "humo2_", tree.Prefix)

	byID, err := repo.GetByPrefix(context.Background(), "1")
	require.NoError(t, err)
	assert.Equal(t, "humo_", byID.Prefix)

	_, err = repo.GetByPrefix(context.Background(), "missing")
	assert.ErrorIs(t, err, repository.ErrNotFound)

	_, err = repo.GetByPrefix(context.Background(), "")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestGormSettingsRepositoryGetVisibility(t *testing.T) {
	_, gormDB := testdb.Open(t)
	testdb.CreateGuest(t, gormDB, models.UserGroup{
		HideTrees:            "2; 5;x;",
		PersHideTotallyAct:   "j",
		PersHideTotallyValue: "PRIVATE",
	})
	repo := repository.NewGormSettingsRepository(gormDB)

	v, err := repo.GetVisibility(context.Background(), "guest")
	require.NoError(t, err)
	assert.True(t, v.HideTotally)
	assert.Equal(t, "PRIVATE", v.Marker)
	assert.True(t, v.IsTreeHidden(2))
	assert.True(t, v.IsTreeHidden(5))
	assert.False(t, v.IsTreeHidden(1))

	_, err = repo.GetVisibility(context.Background(), "admin")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestGormSettingsRepositoryHideTotallyOff(t *testing.T) {
	_, gormDB := testdb.Open(t)
	testdb.CreateGuest(t, gormDB, models.UserGroup{PersHideTotallyAct: "n", PersHideTotallyValue: "PRIVATE"})

	v, err := repository.NewGormSettingsRepository(gormDB).GetVisibility(context.Background(), "guest")
	require.NoError(t, err)
	assert.False(t, v.HideTotally)
	assert.Empty(t, v.HiddenTrees)
}

func TestGormSettingsRepositoryGetSetting(t *testing.T) {
	_, gormDB := testdb.Open(t)
	testdb.Create(t, gormDB, &models.Setting{Variable: models.SettingURLRewrite, Value: "j"})
	repo := repository.NewGormSettingsRepository(gormDB)

	value, err := repo.GetSetting(context.Background(), models.SettingURLRewrite)
	require.NoError(t, err)
	assert.Equal(t, "j", value)

	value, err = repo.GetSetting(context.Background(), "unknown")
	require.NoError(t, err)
	assert.Empty(t, value)
}

func TestParseHiddenTrees(t *testing.T) {
	assert.Empty(t, repository.ParseHiddenTrees(""))
	assert.Equal(t, map[uint]struct{}{3: {}, 12: {}}, repository.ParseHiddenTrees("3;12"))
}
