package models

import "math"

// UnsetDouble and UnsetInteger stand in for "no value" on numeric fields so
// that price and quantity fields stay uniformly float64/int for downstream
// arithmetic. Consumers must treat the sentinel as absent before computing
// with it.
var UnsetDouble = math.Inf(1)

const UnsetInteger = math.MaxInt32

func IsUnsetDouble(v float64) bool {
	return math.IsInf(v, 1)
}

func IsUnsetInteger(v int) bool {
	return v == UnsetInteger
}
