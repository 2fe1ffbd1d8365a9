package money_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tengepay/tengepay-go/money"
)

func TestFromMinor(t *testing.T) {
	t.Run("divides by the currency factor", func(t *testing.T) {
		m, err := money.FromMinor(150000, money.KZT)

		require.NoError(t, err)
		assert.Equal(t, money.KZT, m.Currency())
		assert.True(t, m.Value().Equal(decimal.RequireFromString("1500.00")),
			"got %s", m.Value())
	})

	t.Run("rejects unknown currency", func(t *testing.T) {
		_, err := money.FromMinor(100, money.Currency("XXX"))

		var currErr *money.UnrecognizedCurrencyError
		require.ErrorAs(t, err, &currErr)
		assert.Equal(t, "XXX", currErr.Code)
	})
}

func TestMinors(t *testing.T) {
	t.Run("multiplies by the currency factor", func(t *testing.T) {
		m, err := money.New(decimal.RequireFromString("19.99"), money.USD)

		require.NoError(t, err)
		assert.Equal(t, int64(1999), m.Minors())
	})

	t.Run("rounds at the currency precision", func(t *testing.T) {
		m, err := money.New(decimal.RequireFromString("10.005"), money.EUR)

		require.NoError(t, err)
		assert.Equal(t, int64(1001), m.Minors())
	})
}

func TestRoundTrip(t *testing.T) {
	currencies := []money.Currency{money.KZT, money.USD, money.EUR, money.RUB}
	amounts := []int64{0, 1, 99, 100, 150000, 999999999}

	for _, c := range currencies {
		for _, minor := range amounts {
			m, err := money.FromMinor(minor, c)
			require.NoError(t, err)
			assert.Equal(t, minor, m.Minors(), "currency %s amount %d", c, minor)
		}
	}
}

func TestNew_UnknownCurrency(t *testing.T) {
	_, err := money.New(decimal.NewFromInt(10), money.Currency("BTC"))

	var currErr *money.UnrecognizedCurrencyError
	require.ErrorAs(t, err, &currErr)
}

func TestEqual(t *testing.T) {
	a := money.MustFromMinor(5000, money.KZT)
	b := money.MustFromMinor(5000, money.KZT)
	c := money.MustFromMinor(5000, money.USD)

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
}
