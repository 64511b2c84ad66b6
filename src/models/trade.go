package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/olekukonko/tablewriter"
)

type TradeLogEntry struct {
	Time    time.Time
	Status  Status
	Message string
}

// Trade is the long-lived aggregate tracking one order from submission to
// completion: the order instruction, its latest status snapshot, accumulated
// fills, and a chronological log. The engine owns consistency between the
// fills and the status numerics; appends and status writes are independent
// operations.
type Trade struct {
	Order       OrderInstruction
	OrderStatus *OrderStatus
	Fills       []*Fill
	Log         []TradeLogEntry
}

func NewTrade(order OrderInstruction) *Trade {
	return &Trade{
		Order:       order,
		OrderStatus: NewOrderStatus(order.Base().OrderID),
		Fills:       []*Fill{},
		Log:         []TradeLogEntry{},
	}
}

// IsDone reports whether the trade is terminally resolved. Derived from the
// current status on every call.
func (t *Trade) IsDone() bool {
	return t.OrderStatus.Status.IsDone()
}

// IsActive reports whether the order is in flight. IsDone and IsActive are
// both false exactly when the status is Inactive.
func (t *Trade) IsActive() bool {
	return t.OrderStatus.Status.IsActive()
}

func (t *Trade) AddFill(fill *Fill) {
	t.Fills = append(t.Fills, fill)
}

func (t *Trade) LogStatus(ts time.Time, status Status, message string) {
	t.Log = append(t.Log, TradeLogEntry{
		Time:    ts,
		Status:  status,
		Message: message,
	})
}

func (t Trade) String() string {
	display := &strings.Builder{}

	o := t.Order.Base()
	display.WriteString(fmt.Sprintf("%s %v %s @ order %d [%s]\n", o.Action, o.TotalQuantity, o.OrderType, o.OrderID, t.OrderStatus.Status))

	table := tablewriter.NewWriter(display)
	table.SetAlignment(tablewriter.ALIGN_CENTER)
	table.SetColumnSeparator("")
	table.SetHeader([]string{"time", "shares", "price", "commission"})

	for _, fill := range t.Fills {
		table.Append([]string{
			fill.Time.Format(time.RFC3339),
			fmt.Sprintf("%v", fill.Execution.Shares),
			fmt.Sprintf("%.2f", fill.Execution.Price),
			fmt.Sprintf("%.2f %s", fill.CommissionReport.Commission, fill.CommissionReport.Currency),
		})
	}

	table.Render()
	return display.String()
}
