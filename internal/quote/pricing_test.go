package quote

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPriceItemsEndToEndScenario(t *testing.T) {
	sub := &Submission{
		Name:      "Jane Doe",
		Email:     "jane@example.com",
		Phone:     "555-1234",
		EventDate: "2025-06-01",
		Quantities: map[string]string{
			"tent-20x20-canopy": "1",
			"chair-crossback":   "10",
		},
	}

	totals := PriceItems(sub)

	require.Len(t, totals.Items, 2)
	assert.Equal(t, "380", totals.Subtotal.String())
	assert.Equal(t, "300", totals.Items[0].LineTotal.String())
	assert.Equal(t, "80", totals.Items[1].LineTotal.String())
}

func TestPriceItemsPreservesCatalogOrder(t *testing.T) {
	sub := &Submission{
		Quantities: map[string]string{
			"cotton-candy-machine": "1",
			"tent-20x20-canopy":    "2",
			"chair-crossback":      "4",
		},
	}

	totals := PriceItems(sub)

	wantOrder := []string{"tent-20x20-canopy", "chair-crossback", "cotton-candy-machine"}
	require.Len(t, totals.Items, len(wantOrder))
	for i, key := range wantOrder {
		assert.Equal(t, key, totals.Items[i].Key, "item %d", i)
	}
}

func TestPriceItemsSkipsBadQuantities(t *testing.T) {
	sub := &Submission{
		Quantities: map[string]string{
			"tent-20x20-canopy": "0",
			"chair-crossback":   "-3",
			"lights-string":     "lots",
			"popcorn-machine":   "",
			"not-a-real-item":   "5",
		},
	}

	totals := PriceItems(sub)
	assert.Empty(t, totals.Items)
	assert.True(t, totals.Subtotal.IsZero(), "expected zero subtotal, got %s", totals.Subtotal)
}

func TestPriceItemsEmptySubmission(t *testing.T) {
	totals := PriceItems(&Submission{})
	assert.Empty(t, totals.Items)
	assert.True(t, totals.Subtotal.IsZero())

	totals = PriceItems(nil)
	assert.Empty(t, totals.Items)
	assert.True(t, totals.Subtotal.IsZero())
}

func TestParseQuantityLeniency(t *testing.T) {
	tests := []struct {
		raw  string
		want int
	}{
		{"3", 3},
		{" 12 ", 12},
		{"3 tables", 3},
		{"12.5", 12},
		{"+4", 4},
		{"-2", -2},
		{"", 0},
		{"abc", 0},
		{"-", 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, parseQuantity(tt.raw), "parseQuantity(%q)", tt.raw)
	}
}
