package handlers

import (
	"context"
	"log/slog"
	nethttp "net/http"

	"github.com/preston-bernstein/efootball-data-service/internal/domain/players"
	"github.com/preston-bernstein/efootball-data-service/internal/http/requestutil"
	"github.com/preston-bernstein/efootball-data-service/internal/logging"
)

const (
	msgMissingName = "Missing ?name parameter"
	msgMissingID   = "Missing ?id parameter"
)

// PlayerService is the lookup surface the handlers need.
type PlayerService interface {
	Search(ctx context.Context, name string) ([]players.Summary, error)
	Player(ctx context.Context, id string) (players.Detail, error)
}

// Handler wires HTTP routes to the player service.
type Handler struct {
	svc    PlayerService
	logger *slog.Logger
}

// NewHandler constructs a Handler with defaults.
func NewHandler(svc PlayerService, logger *slog.Logger) *Handler {
	return &Handler{
		svc:    svc,
		logger: logger,
	}
}

// Health reports the service health.
func (h *Handler) Health(w nethttp.ResponseWriter, r *nethttp.Request) {
	if err := r.Context().Err(); err != nil {
		writeError(w, r, nethttp.StatusServiceUnavailable, "shutting down", h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ok"}, h.logger)
}

// SearchPlayers serves GET /api/player?name=.
func (h *Handler) SearchPlayers(w nethttp.ResponseWriter, r *nethttp.Request) {
	name := requestutil.QueryParam(r, "name")
	if name == "" {
		writeError(w, r, nethttp.StatusBadRequest, msgMissingName, h.logger)
		return
	}

	items, err := h.svc.Search(r.Context(), name)
	if err != nil {
		h.fail(w, r, err, logging.FieldQuery, name)
		return
	}
	writeJSON(w, nethttp.StatusOK, players.NewSearchResponse(items), h.logger)
}

// PlayerInfo serves GET /api/playerinfo?id=.
func (h *Handler) PlayerInfo(w nethttp.ResponseWriter, r *nethttp.Request) {
	id := requestutil.QueryParam(r, "id")
	if id == "" {
		writeError(w, r, nethttp.StatusBadRequest, msgMissingID, h.logger)
		return
	}

	detail, err := h.svc.Player(r.Context(), id)
	if err != nil {
		h.fail(w, r, err, logging.FieldPlayerID, id)
		return
	}
	writeJSON(w, nethttp.StatusOK, players.DetailResponse{
		Success: true,
		ID:      id,
		Info:    detail,
	}, h.logger)
}

// NotFound answers unknown routes with the JSON error envelope.
func (h *Handler) NotFound(w nethttp.ResponseWriter, r *nethttp.Request) {
	writeError(w, r, nethttp.StatusNotFound, "not found", h.logger)
}

// MethodNotAllowed answers known routes hit with the wrong method.
func (h *Handler) MethodNotAllowed(w nethttp.ResponseWriter, r *nethttp.Request) {
	writeError(w, r, nethttp.StatusMethodNotAllowed, "method not allowed", h.logger)
}

// fail maps every lookup failure to 500; the upstream error text is passed through.
func (h *Handler) fail(w nethttp.ResponseWriter, r *nethttp.Request, err error, args ...any) {
	logging.Error(loggerFromContext(r, h.logger), "player lookup failed", err, args...)
	writeError(w, r, nethttp.StatusInternalServerError, err.Error(), h.logger)
}
