package eventmodels

import (
	"fmt"
	"time"

	"xtrading/src/models"
)

type CsvBarDTO struct {
	Date   string  `csv:"date"`
	Open   float64 `csv:"open"`
	High   float64 `csv:"high"`
	Low    float64 `csv:"low"`
	Close  float64 `csv:"close"`
	Volume int64   `csv:"volume"`
}

// ToBarData converts the row into a validated bar. A row that violates the
// OHLC invariant is returned as an error, never as a corrected bar.
func (dto *CsvBarDTO) ToBarData() (*models.BarData, error) {
	t, err := time.Parse(time.RFC3339, dto.Date)
	if err != nil {
		t, err = time.Parse("2006-01-02", dto.Date)
		if err != nil {
			return nil, fmt.Errorf("error parsing date %q: %w", dto.Date, err)
		}
	}

	return models.NewBarData(t, dto.Open, dto.High, dto.Low, dto.Close, dto.Volume)
}
