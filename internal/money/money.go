// Package money provides a currency amount with fixed-rate conversion.
package money

import (
	"fmt"
	"math"

	"github.com/go-petr/household/pkg/currencypkg"
	"github.com/shopspring/decimal"
)

var validate = currencypkg.MustNewValidator()

var maxAmount = decimal.NewFromInt(math.MaxInt)

// Money holds a whole amount in one of the supported currencies.
//
// Money is a value: every operation returns a new Money.
type Money struct {
	amount   int
	currency string
}

// Bad returns the fallback value produced by invalid input or results out of range.
func Bad() Money {
	return Money{amount: 0, currency: currencypkg.BAD}
}

// New returns Money for the given amount and currency.
// A negative amount or an unsupported currency yields Bad().
func New(amount int, currency string) Money {
	if err := validate.Var(amount, "gte=0"); err != nil {
		return Bad()
	}
	if err := validate.Var(currency, "currency"); err != nil {
		return Bad()
	}
	return Money{amount: amount, currency: currency}
}

// Amount returns the whole amount.
func (m Money) Amount() int {
	return m.amount
}

// Currency returns the currency code.
func (m Money) Currency() string {
	return m.currency
}

// IsBad reports whether m is the fallback value.
func (m Money) IsBad() bool {
	return m.currency == currencypkg.BAD
}

// Convert returns m expressed in the given currency, truncated to a whole amount.
// A result too large for an int yields Bad().
func (m Money) Convert(currency string) Money {
	if !currencypkg.IsSupportedCurrency(currency) {
		return Bad()
	}

	// Multiply before dividing so same-currency and exact rates stay exact.
	amount := decimal.NewFromInt(int64(m.amount)).
		Mul(currencypkg.PerUSD(currency)).
		Div(currencypkg.PerUSD(m.currency)).
		Truncate(0)

	if amount.GreaterThan(maxAmount) {
		return Bad()
	}

	return New(int(amount.IntPart()), currency)
}

// Add converts m into other's currency and adds other to it.
// A sum too large for an int yields Bad().
func (m Money) Add(other Money) Money {
	converted := m.Convert(other.currency)
	if converted.amount > math.MaxInt-other.amount {
		return Bad()
	}
	return New(converted.amount+other.amount, other.currency)
}

// Subtract converts other into m's currency and returns the converted amount minus m.
// A negative difference yields Bad().
func (m Money) Subtract(other Money) Money {
	converted := other.Convert(m.currency)
	return New(converted.amount-m.amount, m.currency)
}

func (m Money) String() string {
	return fmt.Sprintf("%d %s", m.amount, m.currency)
}
