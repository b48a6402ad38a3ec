package exchange

import (
	"fmt"
	"maps"
	"os"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/frostguard/frostguard/internal/currency"
)

// DefaultFallbackRates are the static values (in BRL) used when the rate service cannot be reached.
func DefaultFallbackRates() Table {
	return Table{
		currency.BRL: decimal.RequireFromString("1.00000"),
		currency.UYU: decimal.RequireFromString("0.13000"),
		currency.PEN: decimal.RequireFromString("1.48000"),
		currency.ARS: decimal.RequireFromString("0.01400"),
		currency.CLP: decimal.RequireFromString("0.00540"),
		currency.PYG: decimal.RequireFromString("0.00069"),
	}
}

type fallbackFile struct {
	Rates map[string]string `yaml:"rates"`
}

// LoadFallbackRates reads a YAML file of the form
//
//	rates:
//	  USD: 5.20
//	  EUR: 6.00
//
// and returns the defaults overridden by its entries. The defaults are BRL values and
// only apply when reporting is BRL.
func LoadFallbackRates(path string, reporting currency.Code) (Table, error) {
	table := Table{reporting: decimal.NewFromInt(1)}
	if reporting == currency.BRL {
		table = DefaultFallbackRates()
	}

	if path == "" {
		return table, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading fallback rates: %w", err)
	}

	var file fallbackFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parsing fallback rates: %w", err)
	}

	overrides := make(Table, len(file.Rates))

	for raw, value := range file.Rates {
		code, err := currency.ParseCode(raw)
		if err != nil {
			return nil, fmt.Errorf("fallback rate %q: %w", raw, err)
		}

		rate, err := decimal.NewFromString(value)
		if err != nil || !rate.IsPositive() {
			return nil, fmt.Errorf("fallback rate %s: invalid value %q", code, value)
		}

		overrides[code] = rate
	}

	maps.Copy(table, overrides)

	return table, nil
}
