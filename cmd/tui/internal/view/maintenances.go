package view

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/frostguard/frostguard/internal/maintenance"
)

var maintenanceStatuses = []maintenance.Status{
	maintenance.StatusInTreatment,
	maintenance.StatusSentToWorkshop,
	maintenance.StatusInMaintenance,
	maintenance.StatusFinished,
}

// nextStage is the stage the "a" key moves a maintenance to.
func nextStage(s maintenance.Status) (maintenance.Status, bool) {
	for i, st := range maintenanceStatuses[:len(maintenanceStatuses)-1] {
		if st == s {
			return maintenanceStatuses[i+1], true
		}
	}

	return "", false
}

type MaintenanceModel struct {
	CommonModel
	svc *maintenance.Service

	table        table.Model
	maintenances []*maintenance.Maintenance

	// Filter cycling
	statusFilterIdx int
	dateFilterIdx   int

	filter  maintenance.ListFilter
	loading bool
	err     error
	status  string
}

func NewMaintenanceModel(svc *maintenance.Service) MaintenanceModel {
	columns := []table.Column{
		{Title: "Problem date", Width: 12},
		{Title: "Status", Width: 18},
		{Title: "Trailer", Width: 12},
		{Title: "Observation", Width: 50},
	}

	return MaintenanceModel{
		svc:     svc,
		table:   newTable(columns),
		loading: true,
	}
}

func (m MaintenanceModel) Title() string { return "Maintenances" }

func (m MaintenanceModel) ShortHelp() string {
	return "Esc: back | a: advance stage | s: status filter | d: date filter | r: refresh"
}

func (m MaintenanceModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m MaintenanceModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loadMaintenancesMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}

		m.err = nil
		m.maintenances = msg.maintenances
		m.refreshTable()

		return m, nil

	case maintenanceSavedMsg:
		m.status = "Stage updated."
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
		case "a":
			return m, m.advanceCmd()
		case "s":
			m.statusFilterIdx = (m.statusFilterIdx + 1) % (len(maintenanceStatuses) + 1)
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

func (m MaintenanceModel) View() string {
	if m.loading {
		return lipgloss.NewStyle().Padding(2).Render("Loading maintenances...")
	}

	if m.err != nil {
		return lipgloss.NewStyle().Padding(2).Render(errorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
	}

	statusLabel := "All"
	if m.statusFilterIdx > 0 {
		statusLabel = string(maintenanceStatuses[m.statusFilterIdx-1])
	}

	header := fmt.Sprintf(
		"Filter: [s] Status: %s | [d] Date: %s",
		activeStyle(statusLabel),
		activeStyle(dateFilterLabels[m.dateFilterIdx]),
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

var dateFilterLabels = []string{"All Time", "This Month", "Last Month"}

// monthRange returns the bounds selected by a date filter index, nil for all time.
func monthRange(idx int, now time.Time) (*time.Time, *time.Time) {
	if idx == 0 {
		return nil, nil
	}

	s := time.Date(now.Year(), now.Month()-time.Month(idx-1), 1, 0, 0, 0, 0, now.Location())
	e := s.AddDate(0, 1, 0).Add(-time.Nanosecond)

	return &s, &e
}

func (m *MaintenanceModel) applyFilter() {
	m.filter.Status = nil
	if m.statusFilterIdx > 0 {
		m.filter.Status = new(maintenanceStatuses[m.statusFilterIdx-1])
	}

	m.filter.StartDate, m.filter.EndDate = monthRange(m.dateFilterIdx, time.Now())
}

func (m *MaintenanceModel) refreshTable() {
	rows := make([]table.Row, 0, len(m.maintenances))
	for _, mt := range m.maintenances {
		rows = append(rows, table.Row{
			FormatDate(mt.ProblemDate),
			string(mt.Status),
			mt.Trailer,
			mt.Observation,
		})
	}

	m.table.SetRows(rows)
}

// Messages

type loadMaintenancesMsg struct {
	maintenances []*maintenance.Maintenance
	err          error
}

func (m MaintenanceModel) loadCmd() tea.Cmd {
	filter := m.filter

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		list, err := m.svc.List(ctx, filter)

		return loadMaintenancesMsg{maintenances: list, err: err}
	}
}

type maintenanceSavedMsg struct {
	err error
}

func (m MaintenanceModel) advanceCmd() tea.Cmd {
	idx := m.table.Cursor()
	if idx < 0 || idx >= len(m.maintenances) {
		return nil
	}

	mt := m.maintenances[idx]

	next, ok := nextStage(mt.Status)
	if !ok {
		return nil
	}

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		if next == maintenance.StatusFinished {
			return maintenanceSavedMsg{err: m.svc.Complete(ctx, mt.ID)}
		}

		return maintenanceSavedMsg{err: m.svc.UpdateStatus(ctx, mt.ID, next)}
	}
}
