package services

import (
	"math"

	"github.com/shopspring/decimal"
)

// round2 rounds to cents, half away from zero on the shortest decimal form of v.
// Overflowed values saturate at the largest float64 and NaN becomes 0.
func round2(v float64) float64 {
	switch {
	case math.IsNaN(v):
		return 0
	case math.IsInf(v, 0):
		return math.Copysign(math.MaxFloat64, v)
	}
	return decimal.NewFromFloat(v).Round(2).InexactFloat64()
}
