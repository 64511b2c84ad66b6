package models

import "math"

type MarketOrder struct {
	Order
}

func NewMarketOrder(action OrderAction, totalQuantity float64, opts ...OrderOption) (*MarketOrder, error) {
	base, err := newOrder(OrderTypeMarket, action, totalQuantity, UnsetDouble, opts)
	if err != nil {
		return nil, err
	}

	return &MarketOrder{Order: *base}, nil
}

type LimitOrder struct {
	Order
}

// NewLimitOrder requires a limit price. The UnsetDouble sentinel is accepted
// as a "no price yet" marker; NaN and -Inf are rejected.
func NewLimitOrder(action OrderAction, totalQuantity float64, price float64, opts ...OrderOption) (*LimitOrder, error) {
	if math.IsNaN(price) || math.IsInf(price, -1) {
		return nil, newValidationError(InvalidPriceErr, "price", "limit price must be finite, got %v", price)
	}

	base, err := newOrder(OrderTypeLimit, action, totalQuantity, price, opts)
	if err != nil {
		return nil, err
	}

	return &LimitOrder{Order: *base}, nil
}

// StopOrder is the shared base for all stop-triggered variants. Price holds
// the stop trigger level. Triggered and TriggerPrice are execution-time state
// written by the engine once the stop condition is met.
type StopOrder struct {
	Order
	Triggered    bool
	TriggerPrice *float64
}

func NewStopOrder(action OrderAction, totalQuantity float64, stopPrice float64, opts ...OrderOption) (*StopOrder, error) {
	base, err := newOrder(OrderTypeStop, action, totalQuantity, stopPrice, opts)
	if err != nil {
		return nil, err
	}

	return &StopOrder{Order: *base}, nil
}

// StopLimitOrder triggers at the stop level held in Price, then evaluates as
// a limit order at LimitPrice.
type StopLimitOrder struct {
	StopOrder
	LimitPrice float64
}

func NewStopLimitOrder(action OrderAction, totalQuantity float64, limitPrice float64, stopPrice float64, opts ...OrderOption) (*StopLimitOrder, error) {
	if math.IsNaN(limitPrice) || math.IsInf(limitPrice, -1) {
		return nil, newValidationError(InvalidPriceErr, "limitPrice", "limit price must be finite, got %v", limitPrice)
	}

	base, err := newOrder(OrderTypeStopLimit, action, totalQuantity, stopPrice, opts)
	if err != nil {
		return nil, err
	}

	return &StopLimitOrder{
		StopOrder:  StopOrder{Order: *base},
		LimitPrice: limitPrice,
	}, nil
}

// TrailingOrder is the shared base for trailing stop variants. Exactly one of
// TrailingDistance or TrailingPercent must be set. StopPrice and ExtremePrice
// are execution-time state written by the engine as market data arrives; the
// model imposes no relationship between them.
type TrailingOrder struct {
	StopOrder
	TrailingDistance *float64
	TrailingPercent  *float64
	StopPrice        *float64
	ExtremePrice     *float64
}

func (o *TrailingOrder) validateTrailing() error {
	if (o.TrailingDistance == nil) == (o.TrailingPercent == nil) {
		return newValidationError(TrailingParamsErr, "trailingDistance/trailingPercent", "exactly one of trailingDistance or trailingPercent must be specified")
	}

	return nil
}

// SetTrailing replaces both trailing parameters together and revalidates the
// exactly-one-of constraint, leaving the order unchanged on failure.
// Assigning the fields directly bypasses this check and is the caller's
// responsibility.
func (o *TrailingOrder) SetTrailing(trailingDistance, trailingPercent *float64) error {
	prevDistance, prevPercent := o.TrailingDistance, o.TrailingPercent

	o.TrailingDistance = trailingDistance
	o.TrailingPercent = trailingPercent

	if err := o.validateTrailing(); err != nil {
		o.TrailingDistance = prevDistance
		o.TrailingPercent = prevPercent
		return err
	}

	return nil
}

func newTrailingOrder(orderType OrderType, action OrderAction, totalQuantity float64, trailingDistance, trailingPercent *float64, opts []OrderOption) (*TrailingOrder, error) {
	base, err := newOrder(orderType, action, totalQuantity, 0.0, opts)
	if err != nil {
		return nil, err
	}

	o := &TrailingOrder{
		StopOrder:        StopOrder{Order: *base},
		TrailingDistance: trailingDistance,
		TrailingPercent:  trailingPercent,
	}

	if err := o.validateTrailing(); err != nil {
		return nil, err
	}

	return o, nil
}

// TrailingStopMarket executes as a market order once the trailing stop is
// triggered.
type TrailingStopMarket struct {
	TrailingOrder
}

func NewTrailingStopMarket(action OrderAction, totalQuantity float64, trailingDistance, trailingPercent *float64, opts ...OrderOption) (*TrailingStopMarket, error) {
	trailing, err := newTrailingOrder(OrderTypeTrail, action, totalQuantity, trailingDistance, trailingPercent, opts)
	if err != nil {
		return nil, err
	}

	return &TrailingStopMarket{TrailingOrder: *trailing}, nil
}

// TrailingStopLimit executes as a limit order once triggered, with the limit
// placed LimitOffset away from the stop.
type TrailingStopLimit struct {
	TrailingOrder
	LimitOffset float64
}

func NewTrailingStopLimit(action OrderAction, totalQuantity float64, limitOffset float64, trailingDistance, trailingPercent *float64, opts ...OrderOption) (*TrailingStopLimit, error) {
	if limitOffset < 0 || math.IsNaN(limitOffset) {
		return nil, newValidationError(InvalidLimitOffsetErr, "limitOffset", "must be non-negative, got %v", limitOffset)
	}

	trailing, err := newTrailingOrder(OrderTypeTrailLimit, action, totalQuantity, trailingDistance, trailingPercent, opts)
	if err != nil {
		return nil, err
	}

	return &TrailingStopLimit{
		TrailingOrder: *trailing,
		LimitOffset:   limitOffset,
	}, nil
}
