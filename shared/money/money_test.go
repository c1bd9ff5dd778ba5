package money_test

import (
	"testing"

	"tripbook/shared/money"

	"github.com/stretchr/testify/assert"
)

func TestMoney_Format(t *testing.T) {
	tests := []struct {
		name     string
		amount   money.Money
		currency string
		expected string
	}{
		{name: "zero", amount: 0, currency: "BDT", expected: "BDT 0"},
		{name: "below thousand", amount: 950, currency: "BDT", expected: "BDT 950"},
		{name: "thousands grouped", amount: 23000, currency: "BDT", expected: "BDT 23,000"},
		{name: "millions grouped", amount: 1234567, currency: "USD", expected: "USD 1,234,567"},
		{name: "empty currency falls back", amount: 2300, currency: "", expected: "BDT 2,300"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.amount.Format(tt.currency))
		})
	}
}
