package main

import (
	"encoding/json"
	"log"
	"net/http"
	"os"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.uber.org/zap"

	_ "github.com/papertrade/folio/docs"
	"github.com/papertrade/folio/internal/db"
	"github.com/papertrade/folio/internal/handlers"
	"github.com/papertrade/folio/internal/jobs"
	"github.com/papertrade/folio/internal/logger"
	"github.com/papertrade/folio/internal/repositories"
	"github.com/papertrade/folio/internal/services"
)

// @title Folio Portfolio History API
// @version 1.0
// @description Portfolio valuation snapshots and history for the trading simulator.
// @BasePath /api
func main() {
	_ = godotenv.Load()

	zlog, err := logger.New()
	if err != nil {
		log.Fatal("Failed to initialize logger:", err)
	}
	defer zlog.Sync()

	// Database connection
	config := db.NewConfig()
	database, err := db.Connect(config)
	if err != nil {
		zlog.Fatal("failed to connect to database", zap.Error(err))
	}
	defer database.Close()

	if err := database.Health(); err != nil {
		zlog.Fatal("database health check failed", zap.Error(err))
	}
	zlog.Info("database connection established")

	// Repositories
	positionRepo := repositories.NewPositionRepository(database)
	priceRepo := repositories.NewPriceRepository(database)
	snapshotRepo := repositories.NewSnapshotRepository(database)

	// Services
	clock := services.NewSystemClock()
	snapshotService := services.NewSnapshotService(positionRepo, priceRepo, snapshotRepo, clock)
	historyService := services.NewHistoryService(snapshotRepo, clock)

	// Daily snapshot job
	snapshotJob := jobs.NewSnapshotJob(snapshotService, positionRepo, zlog)
	cronSpec := getEnv("SNAPSHOT_CRON", "5 0 * * *")
	if cronSpec != "off" {
		if err := snapshotJob.Start(cronSpec); err != nil {
			zlog.Fatal("failed to schedule snapshot job", zap.Error(err))
		}
		defer snapshotJob.Stop()
	}

	// Handlers and routes
	historyHandler := handlers.NewPortfolioHistoryHandler(snapshotService, historyService, zlog)

	router := mux.NewRouter()
	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{
			"status":  "healthy",
			"service": "folio-backend",
		})
	}).Methods(http.MethodGet)
	historyHandler.Register(router)
	router.PathPrefix("/swagger/").Handler(httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	// CORS middleware
	corsHandler := func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Access-Control-Allow-Origin", "*")
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusOK)
				return
			}

			next.ServeHTTP(w, r)
		})
	}

	port := getEnv("SERVER_PORT", "8080")
	zlog.Info("server starting", zap.String("port", port))
	if err := http.ListenAndServe(":"+port, corsHandler(router)); err != nil {
		zlog.Fatal("server stopped", zap.Error(err))
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
