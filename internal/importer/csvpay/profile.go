package csvpay

// Profile describes the column layout of a payment spreadsheet.
type Profile struct {
	Name           string
	MaintenanceCol string
	CostCenterCol  string
	InvoiceCol     string
	AmountCol      string
	DueDateCol     string
	DateLayout     string
	Numbers        numberStyle
}

func (p Profile) requiredCols() []string {
	return []string{p.MaintenanceCol, p.CostCenterCol, p.AmountCol, p.DueDateCol}
}

// profiles are tried in order against every row until one matches as a header.
var profiles = []Profile{
	{
		Name:           "planilha",
		MaintenanceCol: "Manutenção",
		CostCenterCol:  "Centro de custo",
		InvoiceCol:     "NF",
		AmountCol:      "Valor",
		DueDateCol:     "Vencimento",
		DateLayout:     "02/01/2006",
		Numbers:        numberBrazilian,
	},
	{
		Name:           "export",
		MaintenanceCol: "maintenance_id",
		CostCenterCol:  "cost_center",
		InvoiceCol:     "invoice_number",
		AmountCol:      "amount",
		DueDateCol:     "due_date",
		DateLayout:     "2006-01-02",
		Numbers:        numberPlain,
	},
}
