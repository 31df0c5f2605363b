package utils

import (
	"strings"

	"github.com/shopspring/decimal"
)

// zeroDecimalCurrencies have no minor unit.
var zeroDecimalCurrencies = map[string]bool{
	"JPY": true,
	"KRW": true,
	"IDR": true,
	"VND": true,
}

// CurrencyPrecision returns the number of minor-unit digits of an ISO 4217 code.
func CurrencyPrecision(currency string) int32 {
	if zeroDecimalCurrencies[strings.ToUpper(currency)] {
		return 0
	}
	return 2
}

// FormatMoney renders amount with the currency's precision, e.g. "1250.50 USD".
// An empty currency renders the bare amount with two decimals.
func FormatMoney(amount decimal.Decimal, currency string) string {
	if currency == "" {
		return amount.StringFixed(2)
	}
	return amount.StringFixed(CurrencyPrecision(currency)) + " " + strings.ToUpper(currency)
}
