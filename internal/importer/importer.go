package importer

import (
	"io"

	"github.com/frostguard/frostguard/internal/payment"
)

type Format string

const (
	FormatPayments Format = "payments"
)

type Importer interface {
	Parse(r io.Reader) ([]payment.ImportRow, error)
}
