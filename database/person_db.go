package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/camden-git/metagridexport/models"
)

// MinNameLength is the floor applied to both first and last name. Shorter
// names are never exported.
const MinNameLength = 3

var ErrInvalidLimit = errors.New("limit must be positive")

// PersonPage selects a window of a tree's persons.
type PersonPage struct {
	TreeID uint
	Offset uint64
	Limit  uint64
}

var personColumns = []string{
	"pers_id", "pers_tree_id", "pers_famc", "pers_fams", "pers_gedcomnumber", "pers_own_code",
	"pers_firstname", "pers_prefix", "pers_lastname", "pers_patronym",
	"pers_birth_date", "pers_death_date", "pers_text",
}

func personPageQuery(page PersonPage) sq.SelectBuilder {
	return psql.Select(personColumns...).
		From("humo_persons").
		Where(sq.Eq{"pers_tree_id": page.TreeID}).
		Where(sq.Expr("LENGTH(pers_firstname) > ?", MinNameLength)).
		Where(sq.Expr("LENGTH(pers_lastname) > ?", MinNameLength)).
		OrderBy("pers_id ASC").
		Limit(page.Limit).
		Offset(page.Offset)
}

// ListPersons returns one page of exportable persons in insertion order.
func ListPersons(ctx context.Context, db *sql.DB, page PersonPage) ([]models.Person, error) {
	if page.Limit == 0 {
		return nil, ErrInvalidLimit
	}

	sqlStr, args, err := personPageQuery(page).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build SQL for ListPersons: %w", err)
	}

	rows, err := db.QueryContext(ctx, sqlStr, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to execute ListPersons query for tree %d: %w", page.TreeID, err)
	}
	defer rows.Close()

	persons := make([]models.Person, 0, page.Limit)
	for rows.Next() {
		p, err := scanPerson(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan person row: %w", err)
		}
		persons = append(persons, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating person rows: %w", err)
	}
	return persons, nil
}

func scanPerson(rows *sql.Rows) (models.Person, error) {
	var (
		p                                     models.Person
		famc, fams, gedcom, ownCode           sql.NullString
		firstName, prefix, lastName, patronym sql.NullString
		birthDate, deathDate, text            sql.NullString
	)
	err := rows.Scan(&p.ID, &p.TreeID, &famc, &fams, &gedcom, &ownCode,
		&firstName, &prefix, &lastName, &patronym,
		&birthDate, &deathDate, &text)
	if err != nil {
		return models.Person{}, err
	}

	p.Famc = famc.String
	p.Fams = fams.String
	p.GedcomNumber = gedcom.String
	p.OwnCode = ownCode.String
	p.FirstName = firstName.String
	p.Prefix = prefix.String
	p.LastName = lastName.String
	p.Patronym = patronym.String
	p.BirthDate = birthDate.String
	p.DeathDate = deathDate.String
	p.Text = text.String
	return p, nil
}
