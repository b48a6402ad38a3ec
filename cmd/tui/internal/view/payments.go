package view

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/frostguard/frostguard/internal/payment"
)

var paymentStatuses = []payment.Status{
	payment.StatusPending,
	payment.StatusSettled,
	payment.StatusCancelled,
}

type PaymentModel struct {
	CommonModel
	svc *payment.Service

	table    table.Model
	payments []*payment.Payment

	statusFilterIdx int
	dateFilterIdx   int

	filter  payment.ListFilter
	loading bool
	err     error
	status  string
}

func NewPaymentModel(svc *payment.Service) PaymentModel {
	columns := []table.Column{
		{Title: "Due", Width: 12},
		{Title: "Settled", Width: 12},
		{Title: "Status", Width: 10},
		{Title: "Invoice", Width: 14},
		{Title: "Amount", Width: 14},
		{Title: "Condition", Width: 20},
	}

	m := PaymentModel{
		svc:             svc,
		table:           newTable(columns),
		loading:         true,
		statusFilterIdx: 1,
	}
	m.applyFilter()

	return m
}

func (m PaymentModel) Title() string { return "Payments" }

func (m PaymentModel) ShortHelp() string {
	return "Esc: back | p: settle | u: reopen | x: cancel | s: status filter | d: date filter | r: refresh"
}

func (m PaymentModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m PaymentModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loadPaymentsMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}

		m.err = nil
		m.payments = msg.payments
		m.refreshTable()

		return m, nil

	case paymentSavedMsg:
		m.status = fmt.Sprintf("Payment %s is now %s.", msg.invoice, msg.to)
		if msg.err != nil {
			m.status = fmt.Sprintf("Error: %v", msg.err)
		}

		return m, m.loadCmd()

	case tea.WindowSizeMsg:
		m.table.SetHeight(msg.Height - 10)
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return m, Back
		case "r":
			m.loading = true
			return m, m.loadCmd()
		case "p":
			return m, m.setStatusCmd(payment.StatusSettled)
		case "u":
			return m, m.setStatusCmd(payment.StatusPending)
		case "x":
			return m, m.setStatusCmd(payment.StatusCancelled)
		case "s":
			m.statusFilterIdx = (m.statusFilterIdx + 1) % (len(paymentStatuses) + 1)
			m.applyFilter()

			return m, m.loadCmd()
		case "d":
			m.dateFilterIdx = (m.dateFilterIdx + 1) % 3
			m.applyFilter()

			return m, m.loadCmd()
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)

	return m, cmd
}

func (m PaymentModel) View() string {
	if m.loading {
		return lipgloss.NewStyle().Padding(2).Render("Loading payments...")
	}

	if m.err != nil {
		return lipgloss.NewStyle().Padding(2).Render(errorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
	}

	statusLabel := "All"
	if m.statusFilterIdx > 0 {
		statusLabel = string(paymentStatuses[m.statusFilterIdx-1])
	}

	header := fmt.Sprintf(
		"Filter: [s] Status: %s | [d] Due: %s | %d payment(s)",
		activeStyle(statusLabel),
		activeStyle(dateFilterLabels[m.dateFilterIdx]),
		len(m.payments),
	)

	content := lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.NewStyle().PaddingBottom(1).Render(header),
		lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("240")).
			Render(m.table.View()),
	)

	if m.status != "" {
		content = lipgloss.NewStyle().Faint(true).Render(m.status) + "\n" + content
	}

	return lipgloss.NewStyle().Padding(1).Render(content)
}

func (m *PaymentModel) applyFilter() {
	m.filter.Status = nil
	if m.statusFilterIdx > 0 {
		m.filter.Status = new(paymentStatuses[m.statusFilterIdx-1])
	}

	m.filter.StartDate, m.filter.EndDate = monthRange(m.dateFilterIdx, time.Now())
}

// Amounts are shown without a currency symbol: each payment is in its cost center's currency.
func (m *PaymentModel) refreshTable() {
	rows := make([]table.Row, 0, len(m.payments))
	for _, p := range m.payments {
		rows = append(rows, table.Row{
			FormatDate(p.DueDate),
			formatDatePtr(p.SettledDate),
			string(p.Status),
			p.InvoiceNumber,
			p.Amount.StringFixed(2),
			p.Condition,
		})
	}

	m.table.SetRows(rows)
}

// Messages

type loadPaymentsMsg struct {
	payments []*payment.Payment
	err      error
}

func (m PaymentModel) loadCmd() tea.Cmd {
	filter := m.filter

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		list, err := m.svc.List(ctx, filter)

		return loadPaymentsMsg{payments: list, err: err}
	}
}

type paymentSavedMsg struct {
	invoice string
	to      payment.Status
	err     error
}

func (m PaymentModel) setStatusCmd(to payment.Status) tea.Cmd {
	idx := m.table.Cursor()
	if idx < 0 || idx >= len(m.payments) {
		return nil
	}

	p := m.payments[idx]

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		_, err := m.svc.UpdateStatus(ctx, p.ID, to)

		return paymentSavedMsg{invoice: p.InvoiceNumber, to: to, err: err}
	}
}
