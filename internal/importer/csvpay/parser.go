package csvpay

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"

	enc "github.com/frostguard/frostguard/internal/encoding"
	"github.com/frostguard/frostguard/internal/payment"
)

// Parser reads semicolon separated payment spreadsheets. The layout is picked by matching
// header names against the known profiles, so title rows above the header are ignored.
type Parser struct{}

func NewParser() *Parser {
	return &Parser{}
}

func (p *Parser) Parse(r io.Reader) ([]payment.ImportRow, error) {
	utf8r, err := enc.NewUTF8Reader(r)
	if err != nil {
		return nil, fmt.Errorf("detect encoding: %w", err)
	}

	reader := csv.NewReader(utf8r)
	reader.Comma = ';'
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}

	profile, colMap, headerIdx := detectProfile(rows)
	if profile == nil {
		return nil, fmt.Errorf("no matching payment layout: expected columns Manutenção, Centro de custo, Valor and Vencimento")
	}

	return parseRows(profile, colMap, rows[headerIdx+1:], headerIdx+1)
}

type colIndex map[string]int

func detectProfile(rows [][]string) (*Profile, colIndex, int) {
	for rowIdx, row := range rows {
		cols := make(colIndex)

		for i, cell := range row {
			name := strings.TrimSpace(cell)
			if name != "" {
				cols[strings.ToLower(name)] = i
			}
		}

		for i := range profiles {
			if matchesProfile(&profiles[i], cols) {
				return &profiles[i], cols, rowIdx
			}
		}
	}

	return nil, nil, 0
}

func matchesProfile(p *Profile, cols colIndex) bool {
	for _, name := range p.requiredCols() {
		if _, ok := cols[strings.ToLower(name)]; !ok {
			return false
		}
	}

	return true
}

func (c colIndex) get(name string) int {
	idx, ok := c[strings.ToLower(name)]
	if !ok {
		return -1
	}

	return idx
}

// parseRows skips blank lines. Any other malformed line fails the whole file with its line number.
func parseRows(p *Profile, cols colIndex, rows [][]string, headerRowNum int) ([]payment.ImportRow, error) {
	var out []payment.ImportRow

	for i, row := range rows {
		line := headerRowNum + i + 1

		if blank(row) {
			continue
		}

		rawID := cellValue(row, cols.get(p.MaintenanceCol))

		maintenanceID, err := uuid.Parse(rawID)
		if err != nil {
			return nil, fmt.Errorf("line %d: invalid maintenance %q", line, rawID)
		}

		center := cellValue(row, cols.get(p.CostCenterCol))
		if center == "" {
			return nil, fmt.Errorf("line %d: missing cost center", line)
		}

		rawAmount := cellValue(row, cols.get(p.AmountCol))

		amount, err := parseAmount(rawAmount, p.Numbers)
		if err != nil {
			return nil, fmt.Errorf("line %d: invalid amount %q", line, rawAmount)
		}

		rawDate := cellValue(row, cols.get(p.DueDateCol))

		due, err := time.Parse(p.DateLayout, rawDate)
		if err != nil {
			return nil, fmt.Errorf("line %d: invalid due date %q", line, rawDate)
		}

		out = append(out, payment.ImportRow{
			Line:           line,
			MaintenanceID:  maintenanceID,
			CostCenterName: center,
			InvoiceNumber:  cellValue(row, cols.get(p.InvoiceCol)),
			Amount:         amount,
			DueDate:        due,
		})
	}

	return out, nil
}

func blank(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}

	return true
}

func cellValue(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}

	return strings.TrimSpace(row[idx])
}
