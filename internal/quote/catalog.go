package quote

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// CatalogEntry is one rentable item offered on the quote form. PriceLabel is
// the human-readable price shown to customers; qualifiers like "each" or
// "per sq ft" are part of the label, not the price.
type CatalogEntry struct {
	Key        string
	Name       string
	PriceLabel string
}

// Catalog lists every item the quote form can request, in the order items
// appear in rendered emails. Keys match the form's input names.
var Catalog = []CatalogEntry{
	{Key: "tent-20x20-canopy", Name: "20x20 All Purpose Canopy", PriceLabel: "$300.00"},
	{Key: "tent-20x20-peak", Name: "20x20 High Peak Tent", PriceLabel: "$375.00"},
	{Key: "tent-20x30-canopy", Name: "20x30 All Purpose Canopy", PriceLabel: "$380.00"},
	{Key: "tent-20x40-peak", Name: "20x40 High Peak Tent", PriceLabel: "$700.00"},
	{Key: "dancefloor-12x12", Name: "12x12 Dark Maple Dance Floor", PriceLabel: "$200.00"},
	{Key: "dancefloor-15x15", Name: "15x15 Dark Maple Dance Floor", PriceLabel: "$350.00"},
	{Key: "dancefloor-18x18", Name: "18x18 Dark Maple Dance Floor", PriceLabel: "$500.00"},
	{Key: "dancefloor-24x24", Name: "24x24 Dark Maple Dance Floor", PriceLabel: "$800.00"},
	{Key: "table-farm-8ft", Name: "8' Farm Table", PriceLabel: "$85.00 each"},
	{Key: "chair-crossback", Name: "Crossback Chair", PriceLabel: "$8.00 each"},
	{Key: "lights-string", Name: "String Lights", PriceLabel: "$1.25 per sq ft"},
	{Key: "lights-pole", Name: "Light Support Pole", PriceLabel: "$10.00 each"},
	{Key: "popcorn-machine", Name: "Popcorn Machine", PriceLabel: "$75.00"},
	{Key: "cotton-candy-machine", Name: "Cotton Candy Machine", PriceLabel: "$75.00"},
}

var priceLabelPattern = regexp.MustCompile(`\$?([\d,]+\.?\d*)`)

// ParsePriceLabel extracts the first decimal number from a price label,
// ignoring the currency symbol, thousands separators and trailing qualifiers.
// Labels with no number parse to zero rather than failing.
func ParsePriceLabel(label string) decimal.Decimal {
	match := priceLabelPattern.FindStringSubmatch(label)
	if match == nil {
		return decimal.Zero
	}
	raw := strings.ReplaceAll(match[1], ",", "")
	raw = strings.TrimSuffix(raw, ".")
	price, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero
	}
	return price
}
