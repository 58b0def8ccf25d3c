package cli

import (
	"fmt"

	"github.com/MarkoPoloResearchLab/vendomat/pkg/vending"
)

// CurrencyFormatter renders cent amounts as euro strings.
type CurrencyFormatter struct{}

// FormatAmount renders cents as "€1.50".
func (CurrencyFormatter) FormatAmount(amount vending.AmountCents) string {
	return fmt.Sprintf("€%.2f", float64(amount)/100.0)
}

// FormatItemPrice renders an item's unit price.
func (formatter CurrencyFormatter) FormatItemPrice(item *vending.Item) string {
	return formatter.FormatAmount(item.PriceCents())
}
