package encoding_test

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"

	"github.com/frostguard/frostguard/internal/encoding"
)

const header = "Manutenção;Centro de custo;Valor;Vencimento\n"

func readAll(t *testing.T, input []byte) string {
	t.Helper()

	r, err := encoding.NewUTF8Reader(bytes.NewReader(input))
	require.NoError(t, err)

	got, err := io.ReadAll(r)
	require.NoError(t, err)

	return string(got)
}

func TestNewUTF8Reader(t *testing.T) {
	latin1, err := charmap.Windows1252.NewEncoder().String(header)
	require.NoError(t, err)

	utf16, err := unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewEncoder().String(header)
	require.NoError(t, err)

	tests := []struct {
		name  string
		input []byte
	}{
		{name: "utf-8 passthrough", input: []byte(header)},
		{name: "utf-8 bom stripped", input: append([]byte{0xEF, 0xBB, 0xBF}, header...)},
		{name: "windows-1252", input: []byte(latin1)},
		{name: "utf-16 little endian", input: []byte(utf16)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, header, readAll(t, tt.input))
		})
	}
}

func TestNewUTF8Reader_LargeInput(t *testing.T) {
	input := header + strings.Repeat("Troca de compressor;Frota Sul;1.250,00;05/02/2024\n", 200)

	assert.Equal(t, input, readAll(t, []byte(input)))
}

func TestNewUTF8Reader_Empty(t *testing.T) {
	assert.Empty(t, readAll(t, nil))
}

func TestDetect(t *testing.T) {
	assert.Equal(t, encoding.UTF8, encoding.Detect([]byte(header)))
	assert.Equal(t, encoding.UTF16LE, encoding.Detect([]byte{0xFF, 0xFE, 'M', 0}))
	assert.Equal(t, encoding.UTF16BE, encoding.Detect([]byte{0xFE, 0xFF, 0, 'M'}))
}
