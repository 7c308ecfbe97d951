package metrics

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/neharmenon05/buildathon/internal/models"
)

func floatPtr(f float64) *float64 { return &f }

func TestTotalValue(t *testing.T) {
	assert.Equal(t, 0.0, TotalValue(nil))

	products := []models.Product{
		{Name: "Tomato", Price: 42, Quantity: 10},
		{Name: "Onion", Price: 35, Quantity: 2},
	}
	assert.Equal(t, 490.0, TotalValue(products))
}

func TestAveragePrice(t *testing.T) {
	// Empty catalog must not divide by zero.
	assert.Equal(t, 0.0, AveragePrice([]models.Product{}))

	single := []models.Product{{Name: "Rice", Price: 50, Quantity: 3}}
	assert.Equal(t, 50.0, AveragePrice(single))

	pair := []models.Product{
		{Price: 40, Quantity: 1},
		{Price: 20, Quantity: 100},
	}
	assert.Equal(t, 30.0, AveragePrice(pair))
}

func TestMarginPercent(t *testing.T) {
	margin, ok := MarginPercent(models.Product{Price: 42, SupplierPrice: floatPtr(30)})
	assert.True(t, ok)
	assert.Equal(t, 40, margin)

	// No supplier price recorded.
	_, ok = MarginPercent(models.Product{Price: 42})
	assert.False(t, ok)

	// Supplier price zero would divide by zero; treated as unknown.
	_, ok = MarginPercent(models.Product{Price: 42, SupplierPrice: floatPtr(0)})
	assert.False(t, ok)

	// Margins are not clamped; selling below cost goes negative.
	margin, ok = MarginPercent(models.Product{Price: 25, SupplierPrice: floatPtr(50)})
	assert.True(t, ok)
	assert.Equal(t, -50, margin)
}

func TestMarginTier(t *testing.T) {
	tests := []struct {
		name     string
		price    float64
		supplier *float64
		want     string
	}{
		{"good margin", 42, floatPtr(30), MarginGood},       // 40%
		{"fair margin", 36, floatPtr(30), MarginFair},       // 20%
		{"boundary 30 is fair", 39, floatPtr(30), MarginFair}, // exactly 30%
		{"poor margin", 33, floatPtr(30), MarginPoor},       // 10%
		{"boundary 15 is poor", 34.5, floatPtr(30), MarginPoor}, // exactly 15%
		{"negative margin is poor", 20, floatPtr(30), MarginPoor},
		{"no supplier price", 42, nil, MarginUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := models.Product{Price: tt.price, SupplierPrice: tt.supplier}
			assert.Equal(t, tt.want, MarginTier(p))
		})
	}
}

func TestDemandTier(t *testing.T) {
	assert.Equal(t, DemandHigh, DemandTier(45))
	assert.Equal(t, DemandMedium, DemandTier(30))
	assert.Equal(t, DemandLow, DemandTier(20))

	// Boundaries: exactly 40 is medium, exactly 25 is low.
	assert.Equal(t, DemandMedium, DemandTier(40))
	assert.Equal(t, DemandLow, DemandTier(25))
}

func TestDashboardScenario(t *testing.T) {
	// Add Tomato 10 kg at ₹42 with no supplier price.
	products := []models.Product{
		{Name: "Tomato", NameHindi: "टमाटर", Quantity: 10, Unit: "kg", Price: 42},
	}

	assert.Equal(t, 420.0, TotalValue(products))
	assert.Equal(t, 42.0, AveragePrice(products))
	assert.Equal(t, MarginUnknown, MarginTier(products[0]))
}
