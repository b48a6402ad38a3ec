// Package currency holds ISO currency codes and the normalizer that expresses
// amounts in the reporting currency.
package currency

import (
	"errors"
	"fmt"
	"strings"

	xcurrency "golang.org/x/text/currency"
)

// Code is an upper-case ISO 4217 currency code.
type Code string

const (
	BRL Code = "BRL"
	USD Code = "USD"
	EUR Code = "EUR"
	UYU Code = "UYU"
	PEN Code = "PEN"
	ARS Code = "ARS"
	CLP Code = "CLP"
	PYG Code = "PYG"
)

// ErrRateUnavailable is returned by a RateSource that has no rate for a currency,
// neither live nor from its fallback table.
var ErrRateUnavailable = errors.New("exchange rate unavailable")

var ErrInvalidCode = errors.New("invalid currency code")

// ParseCode validates s against the ISO 4217 registry and returns it upper-cased.
func ParseCode(s string) (Code, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	if len(s) != 3 {
		return "", fmt.Errorf("%w: %q", ErrInvalidCode, s)
	}

	unit, err := xcurrency.ParseISO(s)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidCode, s)
	}

	return Code(unit.String()), nil
}

func (c Code) String() string { return string(c) }
