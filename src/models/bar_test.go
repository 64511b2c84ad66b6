package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestBarDataValidation(t *testing.T) {
	date := time.Date(2024, 6, 3, 9, 30, 0, 0, time.UTC)

	t.Run("valid bar", func(t *testing.T) {
		bar, err := NewBarData(date, 10, 12, 9, 11, 1000)
		require.NoError(t, err)
		require.Equal(t, 10.0, bar.Open)
		require.Equal(t, 12.0, bar.High)
		require.Equal(t, 9.0, bar.Low)
		require.Equal(t, 11.0, bar.Close)
		require.Equal(t, int64(1000), bar.Volume)
	})

	t.Run("high below low", func(t *testing.T) {
		_, err := NewBarData(date, 10, 9, 12, 10, 0)
		require.ErrorIs(t, err, OhlcRangeErr)
		require.ErrorContains(t, err, "high (9) must be >= low (12)")
	})

	t.Run("high below open", func(t *testing.T) {
		_, err := NewBarData(date, 13, 12, 9, 11, 0)
		require.ErrorIs(t, err, OhlcRangeErr)
		require.ErrorContains(t, err, "high (12) must be >= open (13)")
	})

	t.Run("high below close", func(t *testing.T) {
		_, err := NewBarData(date, 10, 12, 9, 13, 0)
		require.ErrorIs(t, err, OhlcRangeErr)
		require.ErrorContains(t, err, "high (12) must be >= close (13)")
	})

	t.Run("low above open", func(t *testing.T) {
		_, err := NewBarData(date, 8.5, 12, 9, 11, 0)
		require.ErrorIs(t, err, OhlcRangeErr)
		require.ErrorContains(t, err, "low (9) must be <= open (8.5)")
	})

	t.Run("low above close", func(t *testing.T) {
		_, err := NewBarData(date, 10, 12, 9, 8.5, 0)
		require.ErrorIs(t, err, OhlcRangeErr)
		require.ErrorContains(t, err, "low (9) must be <= close (8.5)")
	})

	t.Run("zero date", func(t *testing.T) {
		_, err := NewBarData(time.Time{}, 10, 12, 9, 11, 0)
		require.ErrorIs(t, err, NoDateErr)
	})

	t.Run("negative volume", func(t *testing.T) {
		_, err := NewBarData(date, 10, 12, 9, 11, -1)
		require.ErrorIs(t, err, InvalidVolumeErr)

		var vErr *ValidationError
		require.ErrorAs(t, err, &vErr)
		require.Equal(t, "volume", vErr.Field)
	})

	t.Run("flat bar is valid", func(t *testing.T) {
		bar, err := NewBarData(date, 10, 10, 10, 10, 0)
		require.NoError(t, err)
		require.NoError(t, bar.Validate())
	})
}
