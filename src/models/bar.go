package models

import (
	"fmt"
	"time"
)

// BarData is a validated OHLCV record. Construction is all-or-nothing: a bar
// that violates the OHLC ordering is never created.
type BarData struct {
	Date   time.Time
	Open   float64
	High   float64
	Low    float64
	Close  float64
	Volume int64
}

func NewBarData(date time.Time, open, high, low, close float64, volume int64) (*BarData, error) {
	b := &BarData{
		Date:   date,
		Open:   open,
		High:   high,
		Low:    low,
		Close:  close,
		Volume: volume,
	}

	if err := b.Validate(); err != nil {
		return nil, err
	}

	return b, nil
}

// Validate checks the cross-field OHLC invariant as a whole: High must be the
// upper bound of the bar and Low the lower bound.
func (b *BarData) Validate() error {
	if b.Date.IsZero() {
		return newValidationError(NoDateErr, "date", "date cannot be zero")
	}

	if b.Volume < 0 {
		return newValidationError(InvalidVolumeErr, "volume", "must be non-negative, got %d", b.Volume)
	}

	if b.High < b.Low {
		return newValidationError(OhlcRangeErr, "high", "high (%v) must be >= low (%v)", b.High, b.Low)
	}

	if b.High < b.Open {
		return newValidationError(OhlcRangeErr, "high", "high (%v) must be >= open (%v)", b.High, b.Open)
	}

	if b.High < b.Close {
		return newValidationError(OhlcRangeErr, "high", "high (%v) must be >= close (%v)", b.High, b.Close)
	}

	if b.Low > b.Open {
		return newValidationError(OhlcRangeErr, "low", "low (%v) must be <= open (%v)", b.Low, b.Open)
	}

	if b.Low > b.Close {
		return newValidationError(OhlcRangeErr, "low", "low (%v) must be <= close (%v)", b.Low, b.Close)
	}

	return nil
}

func (b BarData) String() string {
	return fmt.Sprintf("%s O:%.2f H:%.2f L:%.2f C:%.2f V:%d", b.Date.Format(time.RFC3339), b.Open, b.High, b.Low, b.Close, b.Volume)
}
