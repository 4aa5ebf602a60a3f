package services

import (
	"context"
	"crypto/subtle"
	"errors"

	"github.com/camden-git/metagridexport/logging"
	"github.com/camden-git/metagridexport/models"
	"github.com/camden-git/metagridexport/repository"
)

const (
	MsgUnauthorized = "Not authorized. Please provide a valid API-key."
	MsgTreeNotFound = "The tree doesn't exist."
)

// ResultKind is the outcome of an export request.
type ResultKind int

const (
	ResultOK ResultKind = iota
	ResultUnauthorized
	ResultBadRequest
	ResultServerError
)

func (k ResultKind) String() string {
	switch k {
	case ResultOK:
		return "ok"
	case ResultUnauthorized:
		return "unauthorized"
	case ResultBadRequest:
		return "bad_request"
	default:
		return "server_error"
	}
}

// GatewayResult is either the exported persons or an error kind with the
// message that may be shown to the caller.
type GatewayResult struct {
	Kind    ResultKind
	Persons []models.ExportedPerson
	Message string
}

type GatewayConfig struct {
	// APIKey the caller must present, empty leaves the export open
	APIKey string

	// ExportUser is the CMS user whose group settings apply
	ExportUser string
}

// Gateway authorizes an export request and runs it.
type Gateway struct {
	cfg      GatewayConfig
	trees    repository.TreeRepository
	settings repository.SettingsRepository
	exporter *PersonExporter
}

func NewGateway(cfg GatewayConfig, trees repository.TreeRepository, settings repository.SettingsRepository, exporter *PersonExporter) *Gateway {
	return &Gateway{cfg: cfg, trees: trees, settings: settings, exporter: exporter}
}

// Handle runs one export request. Every outcome is final: an error result
// never carries persons.
func (g *Gateway) Handle(ctx context.Context, req ExportRequest) GatewayResult {
	if !g.authorized(req.APIKey) {
		return GatewayResult{Kind: ResultUnauthorized, Message: MsgUnauthorized}
	}

	tree, err := g.trees.GetByPrefix(ctx, req.Tree)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return GatewayResult{Kind: ResultBadRequest, Message: MsgTreeNotFound}
		}
		logging.Ctx(ctx).Error().Err(err).Str("tree", req.Tree).Msg("tree lookup failed")
		return GatewayResult{Kind: ResultServerError}
	}

	visibility, err := g.settings.GetVisibility(ctx, g.cfg.ExportUser)
	if err != nil {
		logging.Ctx(ctx).Error().Err(err).Str("user", g.cfg.ExportUser).Msg("loading group settings failed")
		return GatewayResult{Kind: ResultServerError}
	}
	// hidden trees are reported exactly like missing ones
	if visibility.IsTreeHidden(tree.ID) {
		return GatewayResult{Kind: ResultBadRequest, Message: MsgTreeNotFound}
	}

	rewrite, err := g.settings.GetSetting(ctx, models.SettingURLRewrite)
	if err != nil {
		logging.Ctx(ctx).Error().Err(err).Msg("loading url_rewrite setting failed")
		return GatewayResult{Kind: ResultServerError}
	}

	opts := ExportOptions{
		Tree:       models.TreeContext{ID: tree.ID, Prefix: tree.Prefix},
		Visibility: visibility,
		URLScheme:  URLSchemeFromSetting(rewrite),
		BasePath:   req.BasePath,
	}
	persons, err := g.exporter.ListPersons(ctx, opts, req.Start, req.Limit)
	if err != nil {
		logging.Ctx(ctx).Error().Err(err).Uint("tree_id", tree.ID).
			Int("start", req.Start).Int("limit", req.Limit).Msg("person export failed")
		return GatewayResult{Kind: ResultServerError}
	}

	logging.Ctx(ctx).Debug().Uint("tree_id", tree.ID).Int("start", req.Start).
		Int("limit", req.Limit).Int("count", len(persons)).Msg("export served")
	return GatewayResult{Kind: ResultOK, Persons: persons}
}

func (g *Gateway) authorized(key string) bool {
	if g.cfg.APIKey == "" {
		return true
	}
	return subtle.ConstantTimeCompare([]byte(key), []byte(g.cfg.APIKey)) == 1
}
