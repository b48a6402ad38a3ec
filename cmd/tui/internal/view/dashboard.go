package view

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/frostguard/frostguard/internal/report"
)

const dashboardTimeout = time.Minute

type dashboardState int

const (
	dashboardStateTimeframe dashboardState = iota
	dashboardStateLoading
	dashboardStateReady
)

// DashboardModel shows every report for a timeframe.
type DashboardModel struct {
	CommonModel
	reportService *report.Service

	state           dashboardState
	timeframePicker TimeframePicker
	selection       TimeframeSelectedMsg
	spinner         spinner.Model

	widgets []report.Widget
	offset  int
	err     error
}

func NewDashboardModel(svc *report.Service) DashboardModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	return DashboardModel{
		reportService:   svc,
		state:           dashboardStateTimeframe,
		timeframePicker: NewTimeframePicker(),
		spinner:         s,
	}
}

func (m DashboardModel) Title() string { return "Dashboard" }

func (m DashboardModel) ShortHelp() string {
	return "Esc: back | t: timeframe | r: refresh | ↑/↓: scroll"
}

func (m DashboardModel) Init() tea.Cmd {
	return nil
}

func (m DashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case TimeframeSelectedMsg:
		m.selection = msg
		m.state = dashboardStateLoading

		return m, tea.Batch(m.spinner.Tick, m.loadCmd())

	case dashboardLoadedMsg:
		m.state = dashboardStateReady
		m.widgets = msg.widgets
		m.err = msg.err
		m.offset = 0

		return m, nil

	case tea.WindowSizeMsg:
		m.Width, m.Height = msg.Width, msg.Height
		return m, nil
	}

	switch m.state {
	case dashboardStateTimeframe:
		if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc && m.timeframePicker.IsSelecting() {
			return m, Back
		}

		var cmd tea.Cmd
		m.timeframePicker, cmd = m.timeframePicker.Update(msg)

		return m, cmd

	case dashboardStateLoading:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)

		return m, cmd

	case dashboardStateReady:
		return m.updateReady(msg)
	}

	return m, nil
}

func (m DashboardModel) updateReady(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "esc":
		return m, Back
	case "t":
		m.timeframePicker.Reset()
		m.state = dashboardStateTimeframe
	case "r":
		m.state = dashboardStateLoading
		return m, tea.Batch(m.spinner.Tick, m.loadCmd())
	case "up", "k":
		if m.offset > 0 {
			m.offset--
		}
	case "down", "j":
		if m.offset < len(m.widgets)-1 {
			m.offset++
		}
	}

	return m, nil
}

func (m DashboardModel) View() string {
	switch m.state {
	case dashboardStateTimeframe:
		return lipgloss.NewStyle().Padding(1).Render(m.timeframePicker.View())
	case dashboardStateLoading:
		return lipgloss.NewStyle().Padding(1).Render(m.spinner.View() + " Computing reports...")
	}

	if m.err != nil {
		return lipgloss.NewStyle().Padding(1).Render(errorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
	}

	header := fmt.Sprintf("Dashboard | %s | %s", activeStyle(m.selection.String()), m.ShortHelp())

	blocks := make([]string, 0, len(m.widgets))
	for _, w := range m.widgets[m.offset:] {
		blocks = append(blocks, RenderWidget(w))
	}

	return lipgloss.NewStyle().Padding(1).Render(
		lipgloss.JoinVertical(lipgloss.Left, header, "", strings.Join(blocks, "\n")),
	)
}

// RenderWidget draws one report as a titled block of aligned rows.
func RenderWidget(w report.Widget) string {
	title := headerStyle.Render(string(w.Report))

	if w.Err != nil {
		return title + "\n  " + errorStyle.Render(w.Err.Error()) + "\n"
	}

	v := report.NewView(w.Result)

	var b strings.Builder

	b.WriteString(title)
	b.WriteString("  total: ")
	b.WriteString(v.TotalText)
	b.WriteString("\n")

	if len(v.Buckets) == 0 {
		b.WriteString("  (no data)\n")
	}

	for _, bucket := range v.Buckets {
		fmt.Fprintf(&b, "  %-32s %5d  %s\n", bucket.Label, bucket.Count, bucket.TotalText)
	}

	if v.Skipped > 0 {
		fmt.Fprintf(&b, "  %d payment(s) skipped\n", v.Skipped)
	}

	if len(v.Degraded) > 0 {
		fmt.Fprintf(&b, "  no rate for %v\n", v.Degraded)
	}

	return b.String()
}

type dashboardLoadedMsg struct {
	widgets []report.Widget
	err     error
}

func (m DashboardModel) loadCmd() tea.Cmd {
	params := report.Params{Window: m.selection.Window()}

	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), dashboardTimeout)
		defer cancel()

		widgets, err := m.reportService.Dashboard(ctx, params)

		return dashboardLoadedMsg{widgets: widgets, err: err}
	}
}
