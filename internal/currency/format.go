package currency

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	xcurrency "golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// locales maps the currencies seen in the fleet to the locale their amounts are usually read in.
var locales = map[Code]language.Tag{
	BRL: language.BrazilianPortuguese,
	ARS: language.MustParse("es-AR"),
	CLP: language.MustParse("es-CL"),
	PYG: language.MustParse("es-PY"),
	UYU: language.MustParse("es-UY"),
	PEN: language.MustParse("es-PE"),
	USD: language.AmericanEnglish,
	EUR: language.MustParse("pt-PT"),
}

// Format renders amount with the currency symbol in the locale associated with code.
// Unknown currencies fall back to "<amount> <code>".
func Format(amount decimal.Decimal, code Code) string {
	unit, err := xcurrency.ParseISO(string(code))
	if err != nil {
		return fmt.Sprintf("%s %s", amount.StringFixed(2), code)
	}

	tag, ok := locales[code]
	if !ok {
		tag = language.BrazilianPortuguese
	}

	f, _ := amount.Round(2).Float64()

	return message.NewPrinter(tag).Sprint(xcurrency.Symbol(unit.Amount(f)))
}

var monthsPT = [...]string{
	"Janeiro", "Fevereiro", "Março", "Abril", "Maio", "Junho",
	"Julho", "Agosto", "Setembro", "Outubro", "Novembro", "Dezembro",
}

// MonthLabel renders a "2006-01" month key as "Janeiro 2024".
// Keys that do not parse are returned unchanged.
func MonthLabel(key string) string {
	t, err := time.Parse("2006-01", key)
	if err != nil {
		return key
	}

	return fmt.Sprintf("%s %d", monthsPT[t.Month()-1], t.Year())
}
