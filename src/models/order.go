package models

import (
	"math"
	"sync/atomic"
)

// OrderIDSource hands out process-unique, monotonically increasing order IDs.
// Numbering starts at 1 and restarts with the process; callers must not rely
// on it for cross-restart uniqueness.
type OrderIDSource struct {
	next int64
}

func NewOrderIDSource() *OrderIDSource {
	return &OrderIDSource{}
}

func (s *OrderIDSource) NextID() int {
	return int(atomic.AddInt64(&s.next, 1))
}

var defaultOrderIDs = NewOrderIDSource()

// OrderInstruction is the closed set of order variants. Every variant exposes
// its shared base fields through Base.
type OrderInstruction interface {
	Base() *Order
}

// Order holds the fields shared by every variant: identity, sizing, routing
// and bracket linkage. Identity and routing fields are set once at
// construction; only variant-specific execution-time state is mutated
// afterwards.
type Order struct {
	OrderID       int
	PermID        int
	ClientID      int
	Action        OrderAction
	TotalQuantity float64
	OrderType     OrderType
	Price         float64
	TIF           string
	GoodTillDate  string
	GoodAfterTime string
	OCAGroup      string
	OrderRef      string
	ParentID      int
	Transmit      bool
	Children      []*Order
}

func (o *Order) Base() *Order {
	return o
}

func (o *Order) HasPrice() bool {
	return !IsUnsetDouble(o.Price)
}

func (o *Order) IsRoot() bool {
	return IsUnsetInteger(o.ParentID)
}

// AddChild overwrites child.ParentID with this order's ID (last writer wins,
// no ownership-transfer check) and appends the child's base to Children.
// Repeated calls with the same child append duplicates. No cycle detection is
// performed; callers must not link an order to one of its ancestors.
func (o *Order) AddChild(child OrderInstruction) {
	c := child.Base()
	c.ParentID = o.OrderID
	o.Children = append(o.Children, c)
}

type OrderOption func(*Order)

// WithOrderID supplies an externally assigned ID. A non-zero ID suppresses
// auto-assignment from the process-wide counter.
func WithOrderID(id int) OrderOption {
	return func(o *Order) { o.OrderID = id }
}

// WithOrderIDFrom assigns the ID from the given source instead of the
// process-wide default.
func WithOrderIDFrom(src *OrderIDSource) OrderOption {
	return func(o *Order) { o.OrderID = src.NextID() }
}

func WithPermID(id int) OrderOption {
	return func(o *Order) { o.PermID = id }
}

func WithClientID(id int) OrderOption {
	return func(o *Order) { o.ClientID = id }
}

func WithTIF(tif string) OrderOption {
	return func(o *Order) { o.TIF = tif }
}

func WithGoodTillDate(date string) OrderOption {
	return func(o *Order) { o.GoodTillDate = date }
}

func WithGoodAfterTime(t string) OrderOption {
	return func(o *Order) { o.GoodAfterTime = t }
}

func WithOCAGroup(group string) OrderOption {
	return func(o *Order) { o.OCAGroup = group }
}

func WithOrderRef(ref string) OrderOption {
	return func(o *Order) { o.OrderRef = ref }
}

func WithTransmit(transmit bool) OrderOption {
	return func(o *Order) { o.Transmit = transmit }
}

// WithParentID sets the bracket back-reference directly, for reconstructing
// an order whose parent is not held in memory. AddChild overwrites it.
func WithParentID(id int) OrderOption {
	return func(o *Order) { o.ParentID = id }
}

func newOrder(orderType OrderType, action OrderAction, totalQuantity float64, price float64, opts []OrderOption) (*Order, error) {
	if err := orderType.Validate(); err != nil {
		return nil, err
	}

	if err := action.Validate(); err != nil {
		return nil, err
	}

	if totalQuantity <= 0 || math.IsNaN(totalQuantity) || math.IsInf(totalQuantity, 0) {
		return nil, newValidationError(InvalidQuantityErr, "totalQuantity", "must be greater than 0, got %v", totalQuantity)
	}

	o := &Order{
		Action:        action,
		TotalQuantity: totalQuantity,
		OrderType:     orderType,
		Price:         price,
		ParentID:      UnsetInteger,
		Transmit:      true,
		Children:      []*Order{},
	}

	for _, opt := range opts {
		opt(o)
	}

	if o.OrderID == 0 {
		o.OrderID = defaultOrderIDs.NextID()
	}

	return o, nil
}
