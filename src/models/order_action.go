package models

type OrderAction string

const (
	Buy  OrderAction = "BUY"
	Sell OrderAction = "SELL"
)

func (a OrderAction) Validate() error {
	switch a {
	case Buy, Sell:
		return nil
	default:
		return newValidationError(InvalidActionErr, "action", "must be BUY or SELL, got %q", string(a))
	}
}
