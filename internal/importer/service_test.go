package importer_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/frostguard/frostguard/internal/importer"
)

func TestService_Import(t *testing.T) {
	csv := "Manutenção;Centro de custo;NF;Valor;Vencimento\n" +
		"5f0c7a0e-8a4b-4a53-9d64-2a4f8f1d0c11;Lima;1;10,00;01/02/2024\n"

	svc := importer.NewService()

	rows, err := svc.Import(importer.FormatPayments, strings.NewReader(csv))
	require.NoError(t, err)
	assert.Len(t, rows, 1)

	_, err = svc.Import("ofx", strings.NewReader(csv))
	assert.Error(t, err)
}
