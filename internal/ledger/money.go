package ledger

import "github.com/shopspring/decimal"

var (
	exchangeRate = decimal.RequireFromString("0.10")

	// distributionTolerance is how far the percentage sum may drift from 100.
	distributionTolerance = decimal.RequireFromString("0.01")

	hundred = decimal.NewFromInt(100)
)

// ExchangeRate returns the fixed number of USD one FC is worth.
func ExchangeRate() decimal.Decimal {
	return exchangeRate
}

// ConvertToUSD returns the USD value of an FC amount at ExchangeRate.
func ConvertToUSD(fc decimal.Decimal) decimal.Decimal {
	return fc.Mul(exchangeRate)
}

// ConvertFromUSD returns the FC amount worth usd at ExchangeRate.
func ConvertFromUSD(usd decimal.Decimal) decimal.Decimal {
	return usd.Div(exchangeRate)
}
