package exchange_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/frostguard/frostguard/internal/currency"
	"github.com/frostguard/frostguard/internal/exchange"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "rates.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestLoadFallbackRates(t *testing.T) {
	t.Run("defaults for BRL", func(t *testing.T) {
		table, err := exchange.LoadFallbackRates("", currency.BRL)
		require.NoError(t, err)

		assert.True(t, decimal.RequireFromString("0.13").Equal(table[currency.UYU]))
		assert.True(t, decimal.RequireFromString("0.00069").Equal(table[currency.PYG]))
	})

	t.Run("no defaults for other reporting currencies", func(t *testing.T) {
		table, err := exchange.LoadFallbackRates("", currency.USD)
		require.NoError(t, err)

		assert.Len(t, table, 1)
		assert.True(t, decimal.NewFromInt(1).Equal(table[currency.USD]))
	})

	t.Run("file overrides defaults", func(t *testing.T) {
		path := writeFile(t, "rates:\n  usd: 5.20\n  UYU: \"0.14\"\n")

		table, err := exchange.LoadFallbackRates(path, currency.BRL)
		require.NoError(t, err)

		assert.True(t, decimal.RequireFromString("5.2").Equal(table[currency.USD]))
		assert.True(t, decimal.RequireFromString("0.14").Equal(table[currency.UYU]))
		assert.True(t, decimal.RequireFromString("1.48").Equal(table[currency.PEN]))
	})

	t.Run("rejects non positive rate", func(t *testing.T) {
		path := writeFile(t, "rates:\n  USD: 0\n")

		_, err := exchange.LoadFallbackRates(path, currency.BRL)
		assert.Error(t, err)
	})

	t.Run("rejects unknown code", func(t *testing.T) {
		path := writeFile(t, "rates:\n  XYZW: 1\n")

		_, err := exchange.LoadFallbackRates(path, currency.BRL)
		assert.Error(t, err)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := exchange.LoadFallbackRates(filepath.Join(t.TempDir(), "nope.yaml"), currency.BRL)
		assert.Error(t, err)
	})
}
