package quote

import (
	"strings"

	"github.com/shopspring/decimal"
)

// LineItem is one requested catalog entry with a positive quantity.
type LineItem struct {
	Key        string
	Name       string
	Quantity   int
	PriceLabel string
	UnitPrice  decimal.Decimal
	LineTotal  decimal.Decimal
}

// Totals holds the priced line items in catalog order plus their subtotal.
// The subtotal excludes tax and additional fees; that caveat is part of the
// rendered email, not a pricing concern here.
type Totals struct {
	Items    []LineItem
	Subtotal decimal.Decimal
}

// PriceItems walks the catalog in declaration order and builds a line item
// for every key the submission requests with a positive quantity. Unknown
// keys and zero, negative or unparseable quantities are skipped. Pricing
// never fails; an empty submission prices to an empty item list.
func PriceItems(sub *Submission) Totals {
	totals := Totals{Subtotal: decimal.Zero}
	if sub == nil {
		return totals
	}
	for _, entry := range Catalog {
		qty := parseQuantity(sub.Quantities[entry.Key])
		if qty <= 0 {
			continue
		}
		unitPrice := ParsePriceLabel(entry.PriceLabel)
		lineTotal := unitPrice.Mul(decimal.NewFromInt(int64(qty)))
		totals.Items = append(totals.Items, LineItem{
			Key:        entry.Key,
			Name:       entry.Name,
			Quantity:   qty,
			PriceLabel: entry.PriceLabel,
			UnitPrice:  unitPrice,
			LineTotal:  lineTotal,
		})
		totals.Subtotal = totals.Subtotal.Add(lineTotal)
	}
	return totals
}

// parseQuantity reads a leading base-10 integer, tolerating trailing junk
// ("3 tables" counts as 3). Anything without a leading digit is zero.
func parseQuantity(raw string) int {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0
	}

	i := 0
	negative := false
	if raw[0] == '+' || raw[0] == '-' {
		negative = raw[0] == '-'
		i++
	}

	value := 0
	digits := 0
	for ; i < len(raw) && raw[i] >= '0' && raw[i] <= '9'; i++ {
		value = value*10 + int(raw[i]-'0')
		digits++
		if value > 1<<30 {
			break
		}
	}
	if digits == 0 {
		return 0
	}
	if negative {
		return -value
	}
	return value
}
