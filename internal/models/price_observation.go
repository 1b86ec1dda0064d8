package models

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

// Timeframe is the granularity tag on a price observation. Snapshot valuation
// only ever consumes TimeframeDay; the other granularities exist for the
// charting side of the price feed.
type Timeframe string

const (
	TimeframeHour  Timeframe = "hour"
	TimeframeDay   Timeframe = "day"
	TimeframeWeek  Timeframe = "week"
	TimeframeMonth Timeframe = "month"
	TimeframeYear  Timeframe = "year"
)

func (t Timeframe) IsValid() bool {
	switch t {
	case TimeframeHour, TimeframeDay, TimeframeWeek, TimeframeMonth, TimeframeYear:
		return true
	}
	return false
}

// PriceObservation is one point of an asset's price series. The series is
// append-only from the snapshot engine's point of view.
type PriceObservation struct {
	ID        int             `json:"id" gorm:"primaryKey;column:id;autoIncrement"`
	AssetID   string          `json:"asset_id" gorm:"column:asset_id;type:varchar(255);not null;index:idx_prices_asset_timeframe_ts"`
	Timeframe Timeframe       `json:"timeframe" gorm:"column:timeframe;type:varchar(10);not null;index:idx_prices_asset_timeframe_ts"`
	Timestamp time.Time       `json:"timestamp" gorm:"column:timestamp;not null;index:idx_prices_asset_timeframe_ts"`
	Price     decimal.Decimal `json:"price" gorm:"column:price;type:decimal(30,18);not null"`
	CreatedAt time.Time       `json:"created_at" gorm:"column:created_at;autoCreateTime"`
}

func (PriceObservation) TableName() string {
	return "price_observations"
}

func (p *PriceObservation) Validate() error {
	if p.AssetID == "" {
		return errors.New("asset_id is required")
	}
	if !p.Timeframe.IsValid() {
		return errors.New("timeframe is invalid")
	}
	if p.Timestamp.IsZero() {
		return errors.New("timestamp is required")
	}
	if p.Price.IsNegative() {
		return errors.New("price must not be negative")
	}
	return nil
}
