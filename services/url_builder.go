package services

import (
	"net/url"
	"strings"

	"github.com/camden-git/metagridexport/models"
)

// URLScheme selects how the CMS builds public family page URLs.
type URLScheme int

const (
	// URLSchemeQuery is family.php with query parameters.
	URLSchemeQuery URLScheme = iota
	// URLSchemeRewrite is the REST style path used when url_rewrite is on.
	URLSchemeRewrite
)

// URLSchemeFromSetting maps the url_rewrite setting value to a scheme.
func URLSchemeFromSetting(value string) URLScheme {
	if value == models.FlagEnabled {
		return URLSchemeRewrite
	}
	return URLSchemeQuery
}

func (s URLScheme) String() string {
	if s == URLSchemeRewrite {
		return "rewrite"
	}
	return "query"
}

// URLBuilder builds family page URLs for one tree.
type URLBuilder struct {
	Scheme     URLScheme
	BasePath   string // no trailing slash, "" for the site root
	TreePrefix string
}

// Build returns the URL of the family page showing personID. personID may
// be empty, the page then has no main person.
func (b URLBuilder) Build(familyID, personID string) string {
	var sb strings.Builder
	sb.WriteString(b.BasePath)

	switch b.Scheme {
	case URLSchemeRewrite:
		sb.WriteString("/family/")
		sb.WriteString(url.PathEscape(b.TreePrefix))
		sb.WriteByte('/')
		sb.WriteString(url.PathEscape(familyID))
		sb.WriteByte('/')
		if personID != "" {
			sb.WriteString(url.PathEscape(personID))
			sb.WriteByte('/')
		}
	default:
		sb.WriteString("/family.php?database=")
		sb.WriteString(url.QueryEscape(b.TreePrefix))
		sb.WriteString("&id=")
		sb.WriteString(url.QueryEscape(familyID))
		if personID != "" {
			sb.WriteString("&main_person=")
			sb.WriteString(url.QueryEscape(personID))
		}
	}
	return sb.String()
}

// BuildForPerson builds the URL of the family page of p.
func (b URLBuilder) BuildForPerson(p models.Person) string {
	return b.Build(FamilyID(p.Famc, p.Fams), p.GedcomNumber)
}

// FamilyID picks the family a person's page is shown in: the first of its
// own families when it has any, otherwise its parents' family.
func FamilyID(famc, fams string) string {
	if fams != "" {
		first, _, _ := strings.Cut(fams, ";")
		return first
	}
	return famc
}

// BasePathFromRequest strips the final segment from a request path,
// "/genealogy/metagrid-router.php" becomes "/genealogy".
func BasePathFromRequest(requestPath string) string {
	idx := strings.LastIndex(requestPath, "/")
	if idx < 0 {
		return ""
	}
	return requestPath[:idx]
}
