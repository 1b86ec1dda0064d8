package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/papertrade/folio/internal/db"
	apperrors "github.com/papertrade/folio/internal/errors"
	"github.com/papertrade/folio/internal/models"
)

type snapshotRepository struct {
	db *db.DB
}

// NewSnapshotRepository creates a new snapshot repository
func NewSnapshotRepository(database *db.DB) SnapshotRepository {
	return &snapshotRepository{db: database}
}

func (r *snapshotRepository) Upsert(ctx context.Context, snapshot *models.PortfolioSnapshot) (*models.PortfolioSnapshot, error) {
	if err := snapshot.Validate(); err != nil {
		return nil, fmt.Errorf("invalid snapshot: %w", err)
	}
	if snapshot.ID == "" {
		snapshot.ID = uuid.New().String()
	}

	// Single conditional write against the (user_id, date) unique index.
	// When a row already exists the insert turns into an in-place update of
	// total_value, so concurrent writers for the same user/day cannot
	// produce two rows.
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "date"}},
		DoUpdates: clause.AssignmentColumns([]string{"total_value", "updated_at"}),
	}).Create(snapshot).Error
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrConflict
		}
		return nil, fmt.Errorf("failed to upsert snapshot: %w", err)
	}

	// The conflict path keeps the existing row's id, so re-read to return
	// what is actually stored.
	return r.GetByUserDate(ctx, snapshot.UserID, snapshot.Date)
}

func (r *snapshotRepository) GetByUserDate(ctx context.Context, userID string, date time.Time) (*models.PortfolioSnapshot, error) {
	var snap models.PortfolioSnapshot
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND date = ?", userID, date).
		First(&snap).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get snapshot: %w", err)
	}
	return &snap, nil
}

func (r *snapshotRepository) ListByUser(ctx context.Context, userID string, dateRange *models.Period) ([]*models.PortfolioSnapshot, error) {
	query := r.db.WithContext(ctx).Where("user_id = ?", userID)
	if dateRange != nil {
		query = query.Where("date >= ? AND date <= ?", dateRange.StartDate, dateRange.EndDate)
	}

	snapshots := make([]*models.PortfolioSnapshot, 0)
	if err := query.Order("date ASC").Find(&snapshots).Error; err != nil {
		return nil, fmt.Errorf("failed to list snapshots: %w", err)
	}
	return snapshots, nil
}
