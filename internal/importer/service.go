package importer

import (
	"fmt"
	"io"

	"github.com/frostguard/frostguard/internal/importer/csvpay"
	"github.com/frostguard/frostguard/internal/payment"
)

type Service struct {
	paymentImporter Importer
}

func NewService() *Service {
	return &Service{
		paymentImporter: csvpay.NewParser(),
	}
}

func (s *Service) Import(format Format, r io.Reader) ([]payment.ImportRow, error) {
	var importer Importer

	switch format {
	case FormatPayments, "":
		importer = s.paymentImporter
	default:
		return nil, fmt.Errorf("unknown import format: %s", format)
	}

	return importer.Parse(r)
}
