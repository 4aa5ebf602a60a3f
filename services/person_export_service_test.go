package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/camden-git/metagridexport/models"
)

type fakePersonRepo struct {
	persons []models.Person
	err     error
	calls   int
}

func (f *fakePersonRepo) List(_ context.Context, _ uint, start, limit int) ([]models.Person, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	if start >= len(f.persons) {
		return []models.Person{}, nil
	}
	end := start + limit
	if end > len(f.persons) {
		end = len(f.persons)
	}
	return f.persons[start:end], nil
}

func testOptions() ExportOptions {
	return ExportOptions{
		Tree:      models.TreeContext{ID: 1, Prefix: "humo_"},
		URLScheme: URLSchemeQuery,
		BasePath:  "/humo",
	}
}

func TestListPersonsShapesRecords(t *testing.T) {
	repo := &fakePersonRepo{persons: []models.Person{{
		TreeID:       1,
		Famc:         "F1",
		Fams:         "F2;F3",
		GedcomNumber: "I10",
		FirstName:    "Pieter",
		Patronym:     "Jansz",
		Prefix:       "van_der",
		LastName:     "Berg",
		BirthDate:    "12 MAR 1701",
		DeathDate:    "ABT 1760",
		Text:         "Baptism record at https://archief.example/doc/1.",
	}}}
	exporter := NewPersonExporter(repo)

	got, err := exporter.ListPersons(context.Background(), testOptions(), 0, 10)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, models.ExportedPerson{
		FirstName: "Pieter Jansz",
		LastName:  "van der Berg",
		BirthDate: "12 MAR 1701",
		DeathDate: "ABT 1760",
		URL:       "/humo/family.php?database=humo_&id=F2&main_person=I10",
		Links:     []string{"https://archief.example/doc/1"},
	}, got[0])
}

func TestListPersonsDropsSuppressedAndKeepsOrder(t *testing.T) {
	repo := &fakePersonRepo{persons: []models.Person{
		{GedcomNumber: "I1", FirstName: "Anna", LastName: "Smit"},
		{GedcomNumber: "I2", FirstName: "Bram", LastName: "Smit", OwnCode: "PRIVATE"},
		{GedcomNumber: "I3", FirstName: "Cees", LastName: "Smit"},
	}}
	opts := testOptions()
	opts.Visibility = models.VisibilitySettings{HideTotally: true, Marker: "PRIVATE"}

	got, err := NewPersonExporter(repo).ListPersons(context.Background(), opts, 0, 10)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Anna", got[0].FirstName)
	assert.Equal(t, "Cees", got[1].FirstName)
}

func TestListPersonsWithoutSuppressionKeepsCount(t *testing.T) {
	repo := &fakePersonRepo{persons: []models.Person{
		{FirstName: "Anna", OwnCode: "PRIVATE"},
		{FirstName: "Bram", OwnCode: "PRIVATE"},
	}}
	opts := testOptions()
	opts.Visibility = models.VisibilitySettings{Marker: "PRIVATE"}

	got, err := NewPersonExporter(repo).ListPersons(context.Background(), opts, 0, 10)
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestListPersonsStartPastEnd(t *testing.T) {
	repo := &fakePersonRepo{persons: []models.Person{{FirstName: "Anna"}}}

	got, err := NewPersonExporter(repo).ListPersons(context.Background(), testOptions(), 5, 10)
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestListPersonsNonPositiveLimitSkipsQuery(t *testing.T) {
	repo := &fakePersonRepo{persons: []models.Person{{FirstName: "Anna"}}}

	got, err := NewPersonExporter(repo).ListPersons(context.Background(), testOptions(), 0, 0)
	require.NoError(t, err)
	assert.Empty(t, got)
	assert.Zero(t, repo.calls)
}

func TestListPersonsFailureIsOpaque(t *testing.T) {
	storeErr := errors.New("database is locked")
	repo := &fakePersonRepo{err: storeErr}

	got, err := NewPersonExporter(repo).ListPersons(context.Background(), testOptions(), 0, 10)
	assert.Nil(t, got)
	assert.ErrorIs(t, err, ErrExportFailed)
	assert.ErrorIs(t, err, storeErr)
}

func TestListPersonsEmptyLinksIsEmptySlice(t *testing.T) {
	repo := &fakePersonRepo{persons: []models.Person{{FirstName: "Anna"}}}

	got, err := NewPersonExporter(repo).ListPersons(context.Background(), testOptions(), 0, 1)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.NotNil(t, got[0].Links)
	assert.Empty(t, got[0].Links)
}

func TestExportNames(t *testing.T) {
	assert.Equal(t, "van der Berg", ExportLastName("van_der", "Berg"))
	assert.Equal(t, "van Berg", ExportLastName("van_", "Berg"))
	assert.Equal(t, "Berg", ExportLastName("", "Berg"))
	assert.Equal(t, "Jansz", ExportFirstName("", "Jansz"))
	assert.Equal(t, "Pieter", ExportFirstName("Pieter", ""))
	assert.Equal(t, "Pieter Jansz", ExportFirstName("Pieter", "Jansz"))
}
