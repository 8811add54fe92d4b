// Package fx converts monetary amounts between display currencies
// using a single externally supplied spot rate. It holds no state and
// performs no I/O.
package fx

import (
	"cartera/internal/domain"

	"github.com/shopspring/decimal"
)

// Convert rescales value from one currency to another at the given
// USD/ARS rate. Unsupported pairs pass through unchanged - a policy
// choice, so an unmapped currency never corrupts a value. A zero or
// negative rate also passes the value through rather than dividing
// by zero.
func Convert(value decimal.Decimal, from, to domain.Currency, rate decimal.Decimal) decimal.Decimal {
	if from == to {
		return value
	}
	if rate.Sign() <= 0 {
		return value
	}
	switch {
	case from == domain.Currency_ARS && to == domain.Currency_USD:
		return value.Div(rate)
	case from == domain.Currency_USD && to == domain.Currency_ARS:
		return value.Mul(rate)
	}
	return value
}
