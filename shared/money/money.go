// Package money holds whole-unit currency amounts and their display format.
package money

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const DefaultCurrency = "BDT"

// Money is an amount in whole currency units. There are no minor units.
type Money int64

// Format renders the amount as "CURRENCY ###,###".
func (m Money) Format(currency string) string {
	if currency == "" {
		currency = DefaultCurrency
	}

	return message.NewPrinter(language.English).Sprintf("%s %d", currency, int64(m))
}

func (m Money) Int64() int64 {
	return int64(m)
}
