package handlers

import (
	"net/http"

	"github.com/camden-git/metagridexport/metrics"
	"github.com/camden-git/metagridexport/models"
	"github.com/camden-git/metagridexport/services"
)

// StatusTreeNotFound is sent for hidden or unknown trees. The spider
// expects 401 here, not 400 or 404.
const StatusTreeNotFound = http.StatusUnauthorized

type ExportHandler struct {
	Gateway *services.Gateway

	// PublicBasePath replaces the base path derived from the request path
	// when set.
	PublicBasePath string
}

// ListPersons handles GET requests of the spider:
// ?tree=<prefix>&start=<n>&limit=<n>&api-key=<key>
func (h *ExportHandler) ListPersons(w http.ResponseWriter, r *http.Request) {
	basePath := h.PublicBasePath
	if basePath == "" {
		basePath = services.BasePathFromRequest(r.URL.Path)
	}

	req := services.ParseExportRequest(r.URL.Query(), basePath)
	result := h.Gateway.Handle(r.Context(), req)
	metrics.RecordExport(result.Kind.String())

	switch result.Kind {
	case services.ResultOK:
		persons := result.Persons
		if persons == nil {
			persons = []models.ExportedPerson{}
		}
		writeJSON(w, http.StatusOK, persons)
	case services.ResultUnauthorized:
		WriteAPIError(w, http.StatusUnauthorized, result.Message)
	case services.ResultBadRequest:
		WriteAPIError(w, StatusTreeNotFound, result.Message)
	default:
		w.WriteHeader(http.StatusInternalServerError)
	}
}
