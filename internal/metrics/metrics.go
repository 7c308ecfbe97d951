// Package metrics holds the pure derived-metric functions computed over
// catalog snapshots. Nothing here has side effects or state.
package metrics

import (
	"math"

	"github.com/neharmenon05/buildathon/internal/models"
)

const (
	DemandHigh   = "high"
	DemandMedium = "medium"
	DemandLow    = "low"
)

const (
	MarginGood    = "good"
	MarginFair    = "fair"
	MarginPoor    = "poor"
	MarginUnknown = "unknown"
)

// TotalValue is the summed inventory value (price x quantity) of the snapshot.
func TotalValue(products []models.Product) float64 {
	total := 0.0
	for _, p := range products {
		total += p.Price * p.Quantity
	}
	return total
}

// AveragePrice is the mean market price per unit across the snapshot,
// 0 for an empty catalog.
func AveragePrice(products []models.Product) float64 {
	if len(products) == 0 {
		return 0
	}
	sum := 0.0
	for _, p := range products {
		sum += p.Price
	}
	return sum / float64(len(products))
}

// MarginPercent is the rounded percentage margin over the supplier price.
// ok is false when no supplier price was recorded. The value is not
// clamped: selling below purchase price yields a negative margin.
func MarginPercent(p models.Product) (int, bool) {
	if p.SupplierPrice == nil || *p.SupplierPrice == 0 {
		return 0, false
	}
	margin := (p.Price - *p.SupplierPrice) / *p.SupplierPrice * 100
	return int(math.Round(margin)), true
}

// MarginTier buckets the margin: >30% good, >15% fair, otherwise poor.
func MarginTier(p models.Product) string {
	margin, ok := MarginPercent(p)
	if !ok {
		return MarginUnknown
	}
	switch {
	case margin > 30:
		return MarginGood
	case margin > 15:
		return MarginFair
	default:
		return MarginPoor
	}
}

// DemandTier estimates market demand from the unit price alone:
// >40 high, >25 medium, otherwise low. Price as a proxy for demand is a
// deliberate simplification carried over from the product design.
func DemandTier(price float64) string {
	switch {
	case price > 40:
		return DemandHigh
	case price > 25:
		return DemandMedium
	default:
		return DemandLow
	}
}
