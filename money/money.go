// Package money provides monetary amounts tied to the closed set of
// currencies the payment API operates in. Amounts travel on the wire as
// integer minor units; Money keeps the exact major value as a decimal.
package money

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Currency is an ISO 4217 currency code supported by the API.
type Currency string

const (
	KZT Currency = "KZT"
	USD Currency = "USD"
	EUR Currency = "EUR"
	RUB Currency = "RUB"
)

// UnrecognizedCurrencyError reports a currency code outside the supported
// set. It signals a broken server contract rather than bad user input, so
// callers should treat it as fatal to the call.
type UnrecognizedCurrencyError struct {
	Code string
}

func (e *UnrecognizedCurrencyError) Error() string {
	return fmt.Sprintf("unrecognized currency %q", e.Code)
}

// MinorFactor returns the number of minor units in one major unit.
func (c Currency) MinorFactor() (int64, error) {
	switch c {
	case KZT, USD, EUR, RUB:
		return 100, nil
	default:
		return 0, &UnrecognizedCurrencyError{Code: string(c)}
	}
}

// Money is an immutable amount in a specific currency.
type Money struct {
	currency Currency
	value    decimal.Decimal
}

// New creates Money from a major-unit value.
func New(value decimal.Decimal, currency Currency) (Money, error) {
	if _, err := currency.MinorFactor(); err != nil {
		return Money{}, err
	}
	return Money{currency: currency, value: value}, nil
}

// FromMinor creates Money from an integer amount of minor units.
func FromMinor(minor int64, currency Currency) (Money, error) {
	factor, err := currency.MinorFactor()
	if err != nil {
		return Money{}, err
	}
	return Money{
		currency: currency,
		value:    decimal.NewFromInt(minor).Div(decimal.NewFromInt(factor)),
	}, nil
}

// MustFromMinor is FromMinor for statically known currencies.
func MustFromMinor(minor int64, currency Currency) Money {
	m, err := FromMinor(minor, currency)
	if err != nil {
		panic(err)
	}
	return m
}

// Minors returns the amount as integer minor units, rounding the major
// value at the currency's precision.
func (m Money) Minors() int64 {
	factor, err := m.currency.MinorFactor()
	if err != nil {
		// The currency was validated at construction.
		panic(err)
	}
	return m.value.Mul(decimal.NewFromInt(factor)).Round(0).IntPart()
}

// Value returns the major-unit value.
func (m Money) Value() decimal.Decimal {
	return m.value
}

// Currency returns the currency the amount is denominated in.
func (m Money) Currency() Currency {
	return m.currency
}

// Equal reports whether both amounts share currency and value.
func (m Money) Equal(other Money) bool {
	return m.currency == other.currency && m.value.Equal(other.value)
}

func (m Money) String() string {
	return fmt.Sprintf("%s %s", m.value.String(), m.currency)
}
