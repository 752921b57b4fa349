package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/jpmiranda/regform/internal/api/handler"
	"github.com/jpmiranda/regform/internal/api/middleware"
	"github.com/jpmiranda/regform/internal/services/registration"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger                 *slog.Logger
	RegistrationController *registration.Controller
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	formHandler := handler.NewFormHandler(cfg.RegistrationController)
	recordHandler := handler.NewRecordHandler(cfg.RegistrationController)

	loggingMiddleware := middleware.Logging(cfg.Logger)
	recoveryMiddleware := middleware.Recovery(cfg.Logger)

	// API subrouter with common middleware
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(recoveryMiddleware)
	api.Use(loggingMiddleware)

	// Form lifecycle routes
	api.HandleFunc("/forms", formHandler.Create).Methods(http.MethodPost)
	api.HandleFunc("/forms/{form_id}", formHandler.Get).Methods(http.MethodGet)
	api.HandleFunc("/forms/{form_id}", formHandler.Delete).Methods(http.MethodDelete)
	api.HandleFunc("/forms/{form_id}/fields", formHandler.UpdateField).Methods(http.MethodPatch)
	api.HandleFunc("/forms/{form_id}/submit", formHandler.Submit).Methods(http.MethodPost)
	api.HandleFunc("/forms/{form_id}/encode", formHandler.Encode).Methods(http.MethodPost)
	api.HandleFunc("/forms/{form_id}/reset", formHandler.Reset).Methods(http.MethodPost)
	api.HandleFunc("/forms/{form_id}/image", formHandler.Image).Methods(http.MethodGet)
	api.HandleFunc("/forms/{form_id}/image/download", formHandler.Download).Methods(http.MethodGet)

	// Record lookup and program catalog
	api.HandleFunc("/records/{student_number}", recordHandler.Get).Methods(http.MethodGet)
	api.HandleFunc("/programs", recordHandler.Programs).Methods(http.MethodGet)

	// Health check endpoint
	api.HandleFunc("/health", healthHandler).Methods(http.MethodGet)

	return r
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
