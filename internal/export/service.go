package export

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jung-kurt/gofpdf"
	"github.com/xuri/excelize/v2"

	"github.com/frostguard/frostguard/internal/metrics"
	"github.com/frostguard/frostguard/internal/report"
)

var ErrUnsupportedFormat = errors.New("unsupported export format")

type Format string

const (
	FormatXLSX Format = "xlsx"
	FormatPDF  Format = "pdf"
	FormatText Format = "txt"
)

func (f Format) ContentType() string {
	switch f {
	case FormatXLSX:
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	case FormatPDF:
		return "application/pdf"
	default:
		return "text/plain; charset=utf-8"
	}
}

// Reporter computes the report being exported.
//
//go:generate mockgen -source=service.go -destination=reporter_mock.go -package=export
type Reporter interface {
	Run(ctx context.Context, name report.Name, params report.Params) (*report.Result, error)
}

// Document is a rendered export.
type Document struct {
	Filename    string
	ContentType string
	Body        []byte
}

// Service renders reports to downloadable documents.
type Service struct {
	reports Reporter
	now     func() time.Time
}

// NewService creates a new export Service.
func NewService(reports Reporter) *Service {
	return &Service{reports: reports, now: time.Now}
}

// Export runs the named report and renders it in format.
func (s *Service) Export(ctx context.Context, name report.Name, format Format, params report.Params) (doc *Document, err error) {
	defer func() { metrics.ObserveExport(string(format), err == nil) }()

	var render func(report.View, time.Time) ([]byte, error)

	switch format {
	case FormatXLSX:
		render = renderXLSX
	case FormatPDF:
		render = renderPDF
	case FormatText:
		render = func(v report.View, _ time.Time) ([]byte, error) { return []byte(Summary(v)), nil }
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}

	res, err := s.reports.Run(ctx, name, params)
	if err != nil {
		return nil, fmt.Errorf("running report: %w", err)
	}

	generated := s.now()

	body, err := render(report.NewView(res), generated)
	if err != nil {
		return nil, fmt.Errorf("rendering %s: %w", format, err)
	}

	return &Document{
		// Format: <report>_YYYYMMDD.<ext>
		Filename:    fmt.Sprintf("%s_%s.%s", name, generated.Format("20060102"), format),
		ContentType: format.ContentType(),
		Body:        body,
	}, nil
}

// Summary renders one line per bucket: "* <label> | <count> | <total>".
func Summary(v report.View) string {
	var sb strings.Builder

	for _, b := range v.Buckets {
		sb.WriteString(fmt.Sprintf("* %s | %d | %s\n", b.Label, b.Count, b.TotalText))
	}

	return sb.String()
}

const (
	sheetSummary = "resumo"
	sheetBuckets = "dados"
)

// writeRows fills sheet from A1 down, one slice per row.
func writeRows(f *excelize.File, sheet string, rows [][]any) error {
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}

		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("write %s row %d: %w", sheet, i+1, err)
		}
	}

	return nil
}

func renderXLSX(v report.View, generated time.Time) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetSummary); err != nil {
		return nil, err
	}

	if _, err := f.NewSheet(sheetBuckets); err != nil {
		return nil, err
	}

	summary := [][]any{
		{"Relatório", string(v.Report)},
		{"Moeda", string(v.Currency)},
		{"Total", v.Total.InexactFloat64()},
		{"Ignorados", v.Skipped},
		{"Gerado em", generated.Format(time.RFC3339)},
	}

	if err := writeRows(f, sheetSummary, summary); err != nil {
		return nil, err
	}

	buckets := make([][]any, 0, len(v.Buckets)+1)
	buckets = append(buckets, []any{"Grupo", "Quantidade", "Total", "Média"})

	for _, b := range v.Buckets {
		buckets = append(buckets, []any{b.Label, b.Count, b.Total.InexactFloat64(), b.Average.InexactFloat64()})
	}

	if err := writeRows(f, sheetBuckets, buckets); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

func renderPDF(v report.View, generated time.Time) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetFont("Arial", "", 12)
	pdf.AddPage()

	pdf.Cell(0, 8, tr("Frost Guard - "+string(v.Report)))
	pdf.Ln(10)
	pdf.SetFont("Arial", "", 10)
	pdf.Cell(0, 6, tr(fmt.Sprintf("Moeda: %s", v.Currency)))
	pdf.Ln(5)
	pdf.Cell(0, 6, tr(fmt.Sprintf("Total: %s", v.TotalText)))
	pdf.Ln(5)
	pdf.Cell(0, 6, tr(fmt.Sprintf("Gerado em: %s", generated.Format(time.RFC3339))))
	pdf.Ln(8)

	pdf.SetFont("Arial", "B", 10)
	pdf.CellFormat(80, 6, "Grupo", "1", 0, "C", false, 0, "")
	pdf.CellFormat(30, 6, "Quantidade", "1", 0, "C", false, 0, "")
	pdf.CellFormat(40, 6, "Total", "1", 0, "C", false, 0, "")
	pdf.CellFormat(40, 6, tr("Média"), "1", 0, "C", false, 0, "")
	pdf.Ln(-1)
	pdf.SetFont("Arial", "", 10)

	for _, b := range v.Buckets {
		pdf.CellFormat(80, 6, tr(b.Label), "1", 0, "L", false, 0, "")
		pdf.CellFormat(30, 6, fmt.Sprintf("%d", b.Count), "1", 0, "R", false, 0, "")
		pdf.CellFormat(40, 6, tr(b.TotalText), "1", 0, "R", false, 0, "")
		pdf.CellFormat(40, 6, tr(b.AverageText), "1", 0, "R", false, 0, "")
		pdf.Ln(-1)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}
