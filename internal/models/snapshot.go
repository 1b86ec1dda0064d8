package models

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

// PortfolioSnapshot is a persisted record of a user's total portfolio value
// as of a calendar day. The date is always midnight UTC; the unique index on
// (user_id, date) is what makes "one record per user per day" hold under
// concurrent writers.
type PortfolioSnapshot struct {
	ID         string          `json:"id" gorm:"primaryKey;column:id;type:varchar(255)"`
	UserID     string          `json:"user_id" gorm:"column:user_id;type:varchar(255);not null;uniqueIndex:idx_snapshots_user_date"`
	Date       time.Time       `json:"date" gorm:"column:date;not null;uniqueIndex:idx_snapshots_user_date"`
	TotalValue decimal.Decimal `json:"total_value" gorm:"column:total_value;type:decimal(30,18);not null"`
	CreatedAt  time.Time       `json:"created_at" gorm:"column:created_at;autoCreateTime"`
	UpdatedAt  time.Time       `json:"updated_at" gorm:"column:updated_at;autoUpdateTime"`
}

func (PortfolioSnapshot) TableName() string {
	return "portfolio_snapshots"
}

func (s *PortfolioSnapshot) Validate() error {
	if s.UserID == "" {
		return errors.New("user_id is required")
	}
	if s.Date.IsZero() {
		return errors.New("date is required")
	}
	if !s.Date.Equal(MidnightUTC(s.Date)) {
		return errors.New("date must be normalized to midnight UTC")
	}
	if s.TotalValue.IsNegative() {
		return errors.New("total_value must not be negative")
	}
	return nil
}

// MidnightUTC truncates an instant to the start of its UTC calendar day.
// Every date comparison in the snapshot engine goes through this, so that
// equality on snapshot dates is exact.
func MidnightUTC(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}
