package services

import (
	"strings"

	"github.com/camden-git/metagridexport/models"
)

// Suppressed reports whether p must be left out of the export entirely.
// The own code is searched with a leading space and a match only counts
// past position 0, mirroring the CMS privacy check.
func Suppressed(p models.Person, v models.VisibilitySettings) bool {
	if !v.HideTotally {
		return false
	}
	return strings.Index(" "+p.OwnCode, v.Marker) > 0
}
