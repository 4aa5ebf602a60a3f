package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/camden-git/metagridexport/metrics"
	"github.com/camden-git/metagridexport/models"
	"github.com/camden-git/metagridexport/repository"
)

// ErrExportFailed wraps any failure while reading the persons of a page.
var ErrExportFailed = errors.New("person export failed")

// ExportOptions carries the per request settings of a person export.
type ExportOptions struct {
	Tree       models.TreeContext
	Visibility models.VisibilitySettings
	URLScheme  URLScheme
	BasePath   string
}

// PersonExporter turns stored persons into export entries.
type PersonExporter struct {
	Persons repository.PersonRepository
}

func NewPersonExporter(persons repository.PersonRepository) *PersonExporter {
	return &PersonExporter{Persons: persons}
}

// ListPersons exports one page of the tree. Persons hidden by the group
// settings are dropped, the others keep their storage order. A limit of
// zero or less exports nothing.
func (e *PersonExporter) ListPersons(ctx context.Context, opts ExportOptions, start, limit int) ([]models.ExportedPerson, error) {
	exported := []models.ExportedPerson{}
	if limit <= 0 {
		return exported, nil
	}

	persons, err := e.Persons.List(ctx, opts.Tree.ID, start, limit)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExportFailed, err)
	}

	builder := URLBuilder{
		Scheme:     opts.URLScheme,
		BasePath:   opts.BasePath,
		TreePrefix: opts.Tree.Prefix,
	}
	for _, p := range persons {
		if Suppressed(p, opts.Visibility) {
			metrics.PersonsSuppressed.Inc()
			continue
		}
		exported = append(exported, models.ExportedPerson{
			FirstName: ExportFirstName(p.FirstName, p.Patronym),
			LastName:  ExportLastName(p.Prefix, p.LastName),
			BirthDate: p.BirthDate,
			DeathDate: p.DeathDate,
			URL:       builder.BuildForPerson(p),
			Links:     ExtractLinks(p.Text),
		})
	}
	metrics.PersonsExported.Add(float64(len(exported)))
	return exported, nil
}

// ExportFirstName joins first name and patronym.
func ExportFirstName(firstName, patronym string) string {
	return strings.TrimSpace(firstName + " " + patronym)
}

// ExportLastName joins prefix and last name. The CMS stores the spaces of
// a prefix as underscores ("van_der"), they are turned back into spaces.
func ExportLastName(prefix, lastName string) string {
	prefix = strings.TrimSpace(strings.ReplaceAll(prefix, "_", " "))
	return strings.TrimSpace(prefix + " " + lastName)
}
