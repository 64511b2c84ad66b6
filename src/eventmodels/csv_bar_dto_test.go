package eventmodels

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"xtrading/src/models"
)

func TestCsvBarDTO(t *testing.T) {
	t.Run("RFC3339 date", func(t *testing.T) {
		dto := CsvBarDTO{Date: "2024-06-03T09:30:00Z", Open: 10, High: 12, Low: 9, Close: 11, Volume: 1000}
		bar, err := dto.ToBarData()
		require.NoError(t, err)
		require.Equal(t, time.Date(2024, 6, 3, 9, 30, 0, 0, time.UTC), bar.Date)
	})

	t.Run("date only", func(t *testing.T) {
		dto := CsvBarDTO{Date: "2024-06-03", Open: 10, High: 12, Low: 9, Close: 11}
		bar, err := dto.ToBarData()
		require.NoError(t, err)
		require.Equal(t, 2024, bar.Date.Year())
	})

	t.Run("unparseable date", func(t *testing.T) {
		dto := CsvBarDTO{Date: "06/03/2024", Open: 10, High: 12, Low: 9, Close: 11}
		_, err := dto.ToBarData()
		require.Error(t, err)
	})

	t.Run("invalid OHLC row is rejected, not corrected", func(t *testing.T) {
		dto := CsvBarDTO{Date: "2024-06-03", Open: 10, High: 9, Low: 12, Close: 11}
		_, err := dto.ToBarData()
		require.ErrorIs(t, err, models.OhlcRangeErr)
	})
}
