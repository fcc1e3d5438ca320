// Package currencypkg provides common currency related functionality for apps.
package currencypkg

import (
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// Constants for all supported currencies.
const (
	USD = "USD"
	GBP = "GBP"
	EUR = "EUR"
	CAN = "CAN"
)

// BAD is the currency code of the fallback money value produced by invalid input.
const BAD = "BAD"

// SupportedCurrencies holds all the supported currencies.
var SupportedCurrencies = []string{
	USD,
	GBP,
	EUR,
	CAN,
}

// perUSD holds the fixed amount of each currency one USD buys.
var perUSD = map[string]decimal.Decimal{
	USD: decimal.NewFromInt(1),
	GBP: decimal.RequireFromString("0.5"),
	EUR: decimal.RequireFromString("1.5"),
	CAN: decimal.RequireFromString("1.25"),
}

// IsSupportedCurrency returns true if the currncy is supported.
func IsSupportedCurrency(currency string) bool {
	for _, c := range SupportedCurrencies {
		if c == currency {
			return true
		}
	}

	return false
}

// PerUSD returns how many units of the currency one USD is worth.
// Unknown currencies are treated at par.
func PerUSD(currency string) decimal.Decimal {
	if r, ok := perUSD[currency]; ok {
		return r
	}
	return decimal.NewFromInt(1)
}

// ValidCurrency validates whether the currency is supported.
var ValidCurrency validator.Func = func(fl validator.FieldLevel) bool {
	if c, ok := fl.Field().Interface().(string); ok {
		return IsSupportedCurrency(c)
	}
	return false
}

// NewValidator returns a validator with the "currency" tag registered.
func NewValidator() (*validator.Validate, error) {
	v := validator.New()
	if err := v.RegisterValidation("currency", ValidCurrency); err != nil {
		return nil, err
	}
	return v, nil
}

// MustNewValidator is like NewValidator but panics if the tag cannot be registered.
func MustNewValidator() *validator.Validate {
	v, err := NewValidator()
	if err != nil {
		panic(err)
	}
	return v
}
