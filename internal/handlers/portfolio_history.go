package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	apperrors "github.com/papertrade/folio/internal/errors"
	"github.com/papertrade/folio/internal/models"
	"github.com/papertrade/folio/internal/services"
)

type PortfolioHistoryHandler struct {
	snapshots services.SnapshotService
	history   services.HistoryService
	logger    *zap.Logger
}

func NewPortfolioHistoryHandler(snapshots services.SnapshotService, history services.HistoryService, logger *zap.Logger) *PortfolioHistoryHandler {
	return &PortfolioHistoryHandler{snapshots: snapshots, history: history, logger: logger}
}

// Register mounts the portfolio history routes on the router
func (h *PortfolioHistoryHandler) Register(r *mux.Router) {
	r.HandleFunc("/api/portfolio-history/{userId}", h.HandleCreateSnapshot).Methods(http.MethodPost)
	r.HandleFunc("/api/portfolio-history/{userId}", h.HandleListHistory).Methods(http.MethodGet)
}

type createSnapshotRequest struct {
	Date string `json:"date"`
}

// HandleCreateSnapshot handles POST /api/portfolio-history/{userId}
// @Summary Create or update a portfolio snapshot
// @Description Value the user's current holdings and upsert the snapshot for the target calendar day (defaults to today)
// @Tags portfolio-history
// @Accept json
// @Produce json
// @Param userId path string true "User ID"
// @Param body body createSnapshotRequest false "Optional target date (YYYY-MM-DD)"
// @Success 200 {object} models.PortfolioSnapshot
// @Failure 400 {string} string "Bad request"
// @Failure 500 {string} string "Internal server error"
// @Router /portfolio-history/{userId} [post]
func (h *PortfolioHistoryHandler) HandleCreateSnapshot(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	userID := mux.Vars(r)["userId"]

	var targetDate *time.Time
	if r.Body != nil && r.ContentLength != 0 {
		var req createSnapshotRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid request body", http.StatusBadRequest)
			return
		}
		if req.Date != "" {
			parsed, err := time.Parse("2006-01-02", req.Date)
			if err != nil {
				http.Error(w, "invalid date, expected YYYY-MM-DD", http.StatusBadRequest)
				return
			}
			targetDate = &parsed
		}
	}

	snapshot, err := h.snapshots.CreateOrUpdateSnapshot(r.Context(), userID, targetDate)
	if err != nil {
		h.writeError(w, err, "create snapshot")
		return
	}
	json.NewEncoder(w).Encode(snapshot)
}

// HandleListHistory handles GET /api/portfolio-history/{userId}
// @Summary List portfolio history
// @Description List persisted snapshots oldest first, optionally restricted to a relative window
// @Tags portfolio-history
// @Produce json
// @Param userId path string true "User ID"
// @Param window query string false "Relative window" Enums(1W, 1M, 6M, 1Y)
// @Success 200 {array} models.PortfolioSnapshot
// @Failure 400 {string} string "Bad request"
// @Failure 500 {string} string "Internal server error"
// @Router /portfolio-history/{userId} [get]
func (h *PortfolioHistoryHandler) HandleListHistory(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	userID := mux.Vars(r)["userId"]

	// An unrecognized window simply means the full history.
	window := models.Window(r.URL.Query().Get("window"))

	history, err := h.history.ListHistory(r.Context(), userID, window)
	if err != nil {
		h.writeError(w, err, "list history")
		return
	}
	json.NewEncoder(w).Encode(history)
}

func (h *PortfolioHistoryHandler) writeError(w http.ResponseWriter, err error, op string) {
	var validation *apperrors.ErrValidation
	if errors.As(err, &validation) {
		http.Error(w, validation.Error(), http.StatusBadRequest)
		return
	}
	if h.logger != nil {
		h.logger.Error("portfolio history request failed", zap.String("op", op), zap.Error(err))
	}
	http.Error(w, "internal server error", http.StatusInternalServerError)
}
