// Package pricing computes booking totals.
package pricing

import (
	"tripbook/internal/domains/booking/model"
	"tripbook/shared/money"
)

// TaxPercent is the fixed tax rate applied to the base price.
const TaxPercent = 15

// Taxes rounds basePrice * 15% half up. This is the only rounding in a breakdown.
func Taxes(basePrice money.Money) money.Money {
	return (basePrice*TaxPercent + 50) / 100
}

// Calculate derives the breakdown for n units of unitPrice plus the selected add-ons.
func Calculate(unitPrice money.Money, n int, addOns model.AddOnSet, mode model.CostMode) model.Breakdown {
	base := unitPrice * money.Money(n)
	taxes := Taxes(base)
	extras := addOns.Cost(mode, n)

	return model.Breakdown{
		UnitPrice:  unitPrice,
		Units:      n,
		BasePrice:  base,
		Taxes:      taxes,
		AddOnTotal: extras,
		Total:      base + taxes + extras,
	}
}

// ForDraft prices a draft from its own unit price, units and add-on selection.
func ForDraft(d *model.Draft) model.Breakdown {
	return Calculate(d.UnitPrice, d.Units(), d.AddOns, d.CostMode())
}
