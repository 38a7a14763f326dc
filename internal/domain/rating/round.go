package rating

import (
	"github.com/shopspring/decimal"
	"github.com/vaclaims/ratings-api/internal/domain"
)

// RoundToNearestTen converts an exact combined value to the VA combined
// rating: the nearest multiple of 10, with exact .5 boundaries rounding up
// (65 -> 70, 64.99 -> 60). The result is clamped to [0, 100].
func RoundToNearestTen(value decimal.Decimal) int {
	// Clamp before IntPart, which wraps for values beyond int64.
	value = decimal.Max(value, decimal.NewFromInt(domain.MinRating))
	value = decimal.Min(value, decimal.NewFromInt(domain.MaxRating))

	return int(value.Round(-1).IntPart())
}
