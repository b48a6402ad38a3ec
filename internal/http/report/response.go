package report

import (
	"github.com/shopspring/decimal"

	"github.com/frostguard/frostguard/internal/currency"
	"github.com/frostguard/frostguard/internal/report"
)

type bucketResponse struct {
	Key         string          `json:"key"`
	Label       string          `json:"label"`
	Count       int             `json:"count"`
	Total       decimal.Decimal `json:"total"`
	Average     decimal.Decimal `json:"average"`
	TotalText   string          `json:"total_formatted"`
	AverageText string          `json:"average_formatted"`
}

type resultResponse struct {
	Report    report.Name      `json:"report"`
	Unit      report.Unit      `json:"unit"`
	Currency  currency.Code    `json:"currency"`
	Buckets   []bucketResponse `json:"buckets"`
	Total     decimal.Decimal  `json:"total"`
	TotalText string           `json:"total_formatted"`
	Skipped   int              `json:"skipped,omitempty"`
	Degraded  []currency.Code  `json:"degraded_currencies,omitempty"`
}

func toResponse(res *report.Result) resultResponse {
	v := report.NewView(res)

	resp := resultResponse{
		Report:    v.Report,
		Unit:      v.Unit,
		Currency:  v.Currency,
		Buckets:   make([]bucketResponse, len(v.Buckets)),
		Total:     v.Total,
		TotalText: v.TotalText,
		Skipped:   v.Skipped,
		Degraded:  v.Degraded,
	}

	for i, b := range v.Buckets {
		resp.Buckets[i] = bucketResponse(b)
	}

	return resp
}

type widgetResponse struct {
	Report report.Name     `json:"report"`
	Result *resultResponse `json:"result,omitempty"`
	Error  string          `json:"error,omitempty"`
}

func toWidgetResponse(w report.Widget) widgetResponse {
	if w.Err != nil {
		return widgetResponse{Report: w.Report, Error: w.Err.Error()}
	}

	return widgetResponse{Report: w.Report, Result: new(toResponse(w.Result))}
}
