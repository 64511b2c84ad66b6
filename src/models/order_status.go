package models

type Status string

const (
	StatusPendingSubmit Status = "PendingSubmit"
	StatusSubmitted     Status = "Submitted"
	StatusFilled        Status = "Filled"
	StatusCancelled     Status = "Cancelled"
	StatusInactive      Status = "Inactive"
)

// DoneStates and ActiveStates are the two fixed classification sets.
// StatusInactive belongs to neither: it is the rejected-or-unknown class,
// neither in flight nor terminally resolved.
var DoneStates = map[Status]bool{
	StatusFilled:    true,
	StatusCancelled: true,
}

var ActiveStates = map[Status]bool{
	StatusPendingSubmit: true,
	StatusSubmitted:     true,
}

func (s Status) IsDone() bool {
	return DoneStates[s]
}

func (s Status) IsActive() bool {
	return ActiveStates[s]
}

// OrderStatus is a lifecycle snapshot for one order. The engine overwrites
// fields directly; no transition-legality check is applied and multi-field
// updates are not atomic.
type OrderStatus struct {
	OrderID       int
	Status        Status
	Filled        float64
	Remaining     float64
	AvgFillPrice  float64
	LastFillPrice float64
	ParentID      int
}

func NewOrderStatus(orderID int) *OrderStatus {
	return &OrderStatus{
		OrderID: orderID,
		Status:  StatusPendingSubmit,
	}
}
