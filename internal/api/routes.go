package api

import (
	"net/http"

	"github.com/Vedlovable/Samadhaan-Setu/internal/handler"
	"github.com/Vedlovable/Samadhaan-Setu/internal/logger"
	"github.com/Vedlovable/Samadhaan-Setu/internal/middleware"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func SetupRouter() http.Handler {
	r := mux.NewRouter()

	// Routes authentifiées (citoyen ou admin)
	authenticatedRoutes := r.PathPrefix("/").Subrouter()
	authenticatedRoutes.Use(middleware.AuthMiddleware)
	authenticatedRoutes.Use(middleware.LoggerMiddleware)

	// Routes de triage (admin seulement)
	adminRoutes := authenticatedRoutes.PathPrefix("/").Subrouter()
	adminRoutes.Use(middleware.RequireAdmin)

	// Root - API documentation
	r.HandleFunc("/", handler.RootHandler).Methods(http.MethodGet)

	// Auth
	r.HandleFunc("/auth/login", handler.Login).Methods(http.MethodPost)
	authenticatedRoutes.HandleFunc("/auth/logout", handler.Logout).Methods(http.MethodPost)
	authenticatedRoutes.HandleFunc("/auth/me", handler.Me).Methods(http.MethodGet)

	// Signalements
	authenticatedRoutes.HandleFunc("/issues", handler.SubmitIssue).Methods(http.MethodPost)
	authenticatedRoutes.HandleFunc("/issues", handler.ListIssues).Methods(http.MethodGet)
	authenticatedRoutes.HandleFunc("/issues/markers", handler.GetMarkers).Methods(http.MethodGet)
	authenticatedRoutes.HandleFunc("/issues/stats", handler.GetStats).Methods(http.MethodGet)

	// Triage
	adminRoutes.HandleFunc("/issues/{kind}/{id}/status", handler.UpdateStatus).Methods(http.MethodPatch)
	adminRoutes.HandleFunc("/issues/{kind}/{id}/assign", handler.Assign).Methods(http.MethodPost)
	authenticatedRoutes.HandleFunc("/issues/{kind}/{id}/updates", handler.GetUpdates).Methods(http.MethodGet)

	// Health check + métriques
	r.HandleFunc("/health", handler.HealthCheck).Methods(http.MethodGet)
	r.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)

	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger.Warning("[404] %s %s (route non trouvée)", r.Method, r.URL.Path)
		http.Error(w, "Route not found", http.StatusNotFound)
	})

	return r
}
