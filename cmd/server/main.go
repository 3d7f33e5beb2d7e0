package main

import (
	"net/http"
	"os"

	"github.com/Vedlovable/Samadhaan-Setu/internal/api"
	"github.com/Vedlovable/Samadhaan-Setu/internal/config"
	"github.com/Vedlovable/Samadhaan-Setu/internal/database"
	"github.com/Vedlovable/Samadhaan-Setu/internal/handler"
	"github.com/Vedlovable/Samadhaan-Setu/internal/lifecycle"
	"github.com/Vedlovable/Samadhaan-Setu/internal/logger"
	"github.com/Vedlovable/Samadhaan-Setu/internal/middleware"
	"github.com/Vedlovable/Samadhaan-Setu/internal/repository"
	"github.com/Vedlovable/Samadhaan-Setu/internal/services"
	"github.com/Vedlovable/Samadhaan-Setu/internal/storage/sqlite"
	"github.com/Vedlovable/Samadhaan-Setu/internal/updatelog"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Could not load config: %v", err)
		os.Exit(1)
	}

	// Connect to PostgreSQL
	db, err := database.ConnectPostgres(cfg)
	if err != nil {
		logger.Error("Database connection failed: %v", err)
		os.Exit(1)
	}
	defer db.Close()

	// Store local (rapports hors-ligne et journal de suivi)
	localStore, err := sqlite.Open(cfg.LocalStorePath)
	if err != nil {
		logger.Error("Local store failed: %v", err)
		os.Exit(1)
	}
	defer localStore.Close()

	// Object storage pour photos et notes vocales
	mediaStore, err := services.NewMediaStore(cfg)
	if err != nil {
		logger.Error("Media store failed: %v", err)
		os.Exit(1)
	}

	// Contrôleur de cycle de vie branché sur les deux backends
	controller := lifecycle.NewController(
		repository.NewIssueRepo(db, mediaStore),
		repository.NewReportRepo(localStore),
		updatelog.New(localStore),
	)
	handler.Init(controller)

	// Initialize routes
	router := api.SetupRouter()

	// Wrap router with CORS middleware
	h := middleware.CORSMiddleware(router)

	// Start server
	logger.Success("Server starting on port %s", cfg.Port)
	if err := http.ListenAndServe(":"+cfg.Port, h); err != nil {
		logger.Error("Server failed: %v", err)
		os.Exit(1)
	}
}
