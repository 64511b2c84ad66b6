package models

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestFill(t *testing.T) {
	now := time.Date(2024, 6, 3, 14, 30, 0, 0, time.UTC)

	t.Run("composes order, execution and commission", func(t *testing.T) {
		order, err := NewLimitOrder(Buy, 100, 150.25)
		require.NoError(t, err)

		execution := Execution{
			OrderID: order.OrderID,
			Time:    now,
			Shares:  40,
			Price:   150.0,
			Side:    Buy,
		}
		report := CommissionReport{Commission: 0.35, Currency: "USD"}

		fill := NewFill(order, execution, report, now)

		require.NotEqual(t, uuid.Nil, fill.ID)
		require.Same(t, order.Base(), fill.Order.Base())
		require.Equal(t, execution, fill.Execution)
		require.Equal(t, report, fill.CommissionReport)
		require.Equal(t, now, fill.Time)
	})

	t.Run("no cross-check between execution and order", func(t *testing.T) {
		order, err := NewMarketOrder(Sell, 10)
		require.NoError(t, err)

		// mismatched order ID and oversized shares are accepted; the engine
		// owns consistency
		fill := NewFill(order, Execution{OrderID: order.OrderID + 1, Time: now, Shares: 500, Price: 1.0, Side: Buy}, CommissionReport{}, now)
		require.NotNil(t, fill)
	})
}
