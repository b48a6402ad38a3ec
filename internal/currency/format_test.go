package currency_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/frostguard/frostguard/internal/currency"
)

func TestFormat(t *testing.T) {
	got := currency.Format(dec("1234.5"), currency.BRL)
	assert.Contains(t, got, "R$")
	assert.Contains(t, got, "234")

	assert.Equal(t, "12.30 QQQ", currency.Format(dec("12.3"), currency.Code("QQQ")))
}

func TestMonthLabel(t *testing.T) {
	assert.Equal(t, "Janeiro 2024", currency.MonthLabel("2024-01"))
	assert.Equal(t, "Dezembro 2023", currency.MonthLabel("2023-12"))
	assert.Equal(t, "Março 2025", currency.MonthLabel("2025-03"))
	assert.Equal(t, "not-a-month", currency.MonthLabel("not-a-month"))
}
