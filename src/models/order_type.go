package models

// OrderType is the variant discriminator. Each constructor fixes the token at
// construction; it is never reassigned afterwards.
type OrderType string

const (
	OrderTypeMarket     OrderType = "MKT"
	OrderTypeLimit      OrderType = "LMT"
	OrderTypeStop       OrderType = "STP"
	OrderTypeStopLimit  OrderType = "STP LMT"
	OrderTypeTrail      OrderType = "TRAIL"
	OrderTypeTrailLimit OrderType = "TRAIL LIMIT"
)

func (t OrderType) Validate() error {
	switch t {
	case OrderTypeMarket, OrderTypeLimit, OrderTypeStop, OrderTypeStopLimit, OrderTypeTrail, OrderTypeTrailLimit:
		return nil
	default:
		return newValidationError(InvalidOrderTypeErr, "orderType", "invalid order type: %s", string(t))
	}
}
