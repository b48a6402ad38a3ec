package payment

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/frostguard/frostguard/internal/payment"
)

type paymentResponse struct {
	ID            uuid.UUID       `json:"id"`
	MaintenanceID uuid.UUID       `json:"maintenance_id"`
	CostCenterID  uuid.UUID       `json:"cost_center_id"`
	InvoiceNumber string          `json:"invoice_number,omitempty"`
	Condition     string          `json:"condition,omitempty"`
	Amount        decimal.Decimal `json:"amount"`
	Status        payment.Status  `json:"status"`
	DueDate       string          `json:"due_date"`
	SettledDate   *time.Time      `json:"settled_date,omitempty"`
	CreatedBy     *uuid.UUID      `json:"created_by,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
}

func toResponse(p *payment.Payment) paymentResponse {
	return paymentResponse{
		ID:            p.ID,
		MaintenanceID: p.MaintenanceID,
		CostCenterID:  p.CostCenterID,
		InvoiceNumber: p.InvoiceNumber,
		Condition:     p.Condition,
		Amount:        p.Amount,
		Status:        p.Status,
		DueDate:       p.DueDate.Format(time.DateOnly),
		SettledDate:   p.SettledDate,
		CreatedBy:     p.CreatedBy,
		CreatedAt:     p.CreatedAt,
	}
}

func toResponseList(ps []*payment.Payment) []paymentResponse {
	resp := make([]paymentResponse, len(ps))
	for i, p := range ps {
		resp[i] = toResponse(p)
	}

	return resp
}
