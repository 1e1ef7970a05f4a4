package api

import (
	"advocacy-dispatch-service/internal/api/handlers"
	"advocacy-dispatch-service/internal/services"
	"net/http"
)

// NewRouter wires HTTP handlers with the orchestrator and returns an
// http.Handler. This is the API composition root (handlers stay unaware of
// concrete vendor adapters).
func NewRouter(orchestrator *services.Orchestrator) http.Handler {
	mux := http.NewServeMux()

	sessionHandler := &handlers.SessionHandler{Orchestrator: orchestrator}

	mux.HandleFunc("GET /health", handlers.Health)
	mux.HandleFunc("POST /sessions", sessionHandler.Create)
	mux.HandleFunc("POST /sessions/{id}/checkout", sessionHandler.Checkout)
	mux.HandleFunc("POST /sessions/{id}/payment", sessionHandler.Payment)

	return loggingMiddleware(mux)
}
