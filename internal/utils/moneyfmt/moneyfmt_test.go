package moneyfmt_test

import (
	"testing"

	"github.com/FlowCashApp/flowcash_backend/internal/utils/moneyfmt"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormat(t *testing.T) {
	testCases := []struct {
		name     string
		amount   string
		currency string
		expected string
	}{
		{name: "USD with grouping", amount: "2450.00", currency: "USD", expected: "$ 2,450.00"},
		{name: "EUR", amount: "200", currency: "EUR", expected: "€ 200.00"},
		{name: "GBP", amount: "50", currency: "GBP", expected: "£ 50.00"},
		{name: "JPY has no minor unit", amount: "5000", currency: "JPY", expected: "¥ 5,000"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			formatted, err := moneyfmt.Format(decimal.RequireFromString(tc.amount), tc.currency)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, formatted)
		})
	}
}

func TestFormat_UnknownCurrency(t *testing.T) {
	_, err := moneyfmt.Format(decimal.NewFromInt(1), "NOPE")
	assert.Error(t, err)
}
