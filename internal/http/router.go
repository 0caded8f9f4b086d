package http

import (
	nethttp "net/http"

	"github.com/gorilla/mux"

	"github.com/preston-bernstein/efootball-data-service/internal/http/handlers"
)

// NewRouter registers the HTTP routes. Only GET is routed; other methods get a JSON 405.
func NewRouter(handler *handlers.Handler) nethttp.Handler {
	r := mux.NewRouter()
	r.HandleFunc("/health", handler.Health).Methods(nethttp.MethodGet)

	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/player", handler.SearchPlayers).Methods(nethttp.MethodGet)
	api.HandleFunc("/playerinfo", handler.PlayerInfo).Methods(nethttp.MethodGet)

	r.NotFoundHandler = nethttp.HandlerFunc(handler.NotFound)
	r.MethodNotAllowedHandler = nethttp.HandlerFunc(handler.MethodNotAllowed)
	return r
}
