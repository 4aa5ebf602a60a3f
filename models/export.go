package models

// ExportedPerson is a single entry of the export response.
type ExportedPerson struct {
	FirstName string   `json:"first_name"`
	LastName  string   `json:"last_name"`
	BirthDate string   `json:"birth_date"`
	DeathDate string   `json:"death_date"`
	URL       string   `json:"url"`
	Links     []string `json:"links"`
}

// TreeContext identifies the tree an export runs against.
type TreeContext struct {
	ID     uint
	Prefix string
}

// VisibilitySettings are the group privacy settings applied to an export.
type VisibilitySettings struct {
	HiddenTrees map[uint]struct{}

	// HideTotally removes persons whose own code carries Marker.
	HideTotally bool
	Marker      string
}

// IsTreeHidden reports whether treeID is in the hidden set.
func (v VisibilitySettings) IsTreeHidden(treeID uint) bool {
	_, ok := v.HiddenTrees[treeID]
	return ok
}
