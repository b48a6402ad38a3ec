package view

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/frostguard/frostguard/internal/report"
)

const inputDateLayout = "02/01/2006"

// Timeframe is a reporting period offered by the picker.
type Timeframe int

const (
	TimeframeThisMonth Timeframe = iota
	TimeframeLastMonth
	TimeframeLastQuarter
	TimeframeThisYear
	TimeframeLastYear
	TimeframeAll
	TimeframeCustom
)

var timeframeLabels = map[Timeframe]string{
	TimeframeThisMonth:   "This month",
	TimeframeLastMonth:   "Last month",
	TimeframeLastQuarter: "Last 3 months",
	TimeframeThisYear:    "This year",
	TimeframeLastYear:    "Last year",
	TimeframeAll:         "All time",
	TimeframeCustom:      "Custom range",
}

func (t Timeframe) String() string {
	if label, ok := timeframeLabels[t]; ok {
		return label
	}

	return "Unknown"
}

// Range returns the first and last day of t relative to now. Both are whole days at midnight UTC.
// All and Custom have no fixed range and return zero times.
func (t Timeframe) Range(now time.Time) (from, to time.Time) {
	today := truncateDay(now)
	monthStart := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, time.UTC)

	switch t {
	case TimeframeThisMonth:
		return monthStart, today
	case TimeframeLastMonth:
		return monthStart.AddDate(0, -1, 0), monthStart.AddDate(0, 0, -1)
	case TimeframeLastQuarter:
		return monthStart.AddDate(0, -3, 0), monthStart.AddDate(0, 0, -1)
	case TimeframeThisYear:
		return time.Date(today.Year(), time.January, 1, 0, 0, 0, 0, time.UTC), today
	case TimeframeLastYear:
		return time.Date(today.Year()-1, time.January, 1, 0, 0, 0, 0, time.UTC),
			time.Date(today.Year()-1, time.December, 31, 0, 0, 0, 0, time.UTC)
	}

	return time.Time{}, time.Time{}
}

func truncateDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// TimeframeSelectedMsg carries the chosen period. From and To are zero when All is set.
type TimeframeSelectedMsg struct {
	From time.Time
	To   time.Time
	All  bool
}

// Window converts the selection into a report window.
func (msg TimeframeSelectedMsg) Window() report.Window {
	if msg.All {
		return report.Window{}
	}

	return report.Window{From: &msg.From, To: &msg.To}
}

func (msg TimeframeSelectedMsg) String() string {
	if msg.All {
		return "All time"
	}

	return FormatDate(msg.From) + " - " + FormatDate(msg.To)
}

// TimeframePicker lets the user choose a preset period or type a custom one.
type TimeframePicker struct {
	cursor Timeframe
	custom bool
	now    func() time.Time

	inputs [2]textinput.Model
	focus  int

	err error
}

func NewTimeframePicker() TimeframePicker {
	p := TimeframePicker{now: time.Now}

	for i, prompt := range []string{"From: ", "To:   "} {
		in := textinput.New()
		in.Placeholder = "DD/MM/YYYY"
		in.CharLimit = len(inputDateLayout)
		in.Width = 12
		in.Prompt = prompt
		p.inputs[i] = in
	}

	return p
}

func (p TimeframePicker) Update(msg tea.Msg) (TimeframePicker, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)

	switch {
	case ok && p.custom:
		return p.updateCustom(keyMsg)
	case ok:
		return p.updatePresets(keyMsg)
	case p.custom:
		var cmd tea.Cmd
		p.inputs[p.focus], cmd = p.inputs[p.focus].Update(msg)

		return p, cmd
	}

	return p, nil
}

func (p TimeframePicker) updatePresets(msg tea.KeyMsg) (TimeframePicker, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if p.cursor > TimeframeThisMonth {
			p.cursor--
		}
	case "down", "j":
		if p.cursor < TimeframeCustom {
			p.cursor++
		}
	case "enter":
		switch p.cursor {
		case TimeframeCustom:
			p.custom = true
			p.focus = 0

			return p, p.inputs[0].Focus()
		case TimeframeAll:
			return p, selected(TimeframeSelectedMsg{All: true})
		}

		from, to := p.cursor.Range(p.now())

		return p, selected(TimeframeSelectedMsg{From: from, To: to})
	}

	return p, nil
}

func (p TimeframePicker) updateCustom(msg tea.KeyMsg) (TimeframePicker, tea.Cmd) {
	switch msg.String() {
	case "esc":
		p.custom = false
		p.err = nil

		return p, nil
	case "tab", "shift+tab":
		p.inputs[p.focus].Blur()
		p.focus = 1 - p.focus

		return p, p.inputs[p.focus].Focus()
	case "enter":
		sel, err := parseCustomRange(p.inputs[0].Value(), p.inputs[1].Value())
		if err != nil {
			p.err = err
			return p, nil
		}

		p.err = nil

		return p, selected(sel)
	}

	var cmd tea.Cmd
	p.inputs[p.focus], cmd = p.inputs[p.focus].Update(msg)

	return p, cmd
}

func parseCustomRange(rawFrom, rawTo string) (TimeframeSelectedMsg, error) {
	from, err := time.Parse(inputDateLayout, strings.TrimSpace(rawFrom))
	if err != nil {
		return TimeframeSelectedMsg{}, errors.New("invalid start date, use DD/MM/YYYY")
	}

	to, err := time.Parse(inputDateLayout, strings.TrimSpace(rawTo))
	if err != nil {
		return TimeframeSelectedMsg{}, errors.New("invalid end date, use DD/MM/YYYY")
	}

	if to.Before(from) {
		return TimeframeSelectedMsg{}, errors.New("end date is before start date")
	}

	return TimeframeSelectedMsg{From: from, To: to}, nil
}

func selected(msg TimeframeSelectedMsg) tea.Cmd {
	return func() tea.Msg { return msg }
}

func (p TimeframePicker) View() string {
	var b strings.Builder

	if p.custom {
		fmt.Fprintf(&b, "Custom range:\n\n%s\n%s\n\n(Enter to confirm, Tab to switch, Esc to back)",
			p.inputs[0].View(), p.inputs[1].View())
	} else {
		b.WriteString("Period:\n\n")

		for t := TimeframeThisMonth; t <= TimeframeCustom; t++ {
			cursor := " "
			if t == p.cursor {
				cursor = ">"
			}

			fmt.Fprintf(&b, "%s %s\n", cursor, t)
		}

		b.WriteString("\n(Enter to select, Esc to back)")
	}

	if p.err != nil {
		b.WriteString("\n\n" + errorStyle.Render(p.err.Error()))
	}

	return b.String()
}

// IsSelecting reports whether the preset list is shown, so Esc belongs to the parent view.
func (p TimeframePicker) IsSelecting() bool {
	return !p.custom
}

func (p *TimeframePicker) Reset() {
	p.custom = false
	p.cursor = TimeframeThisMonth
	p.err = nil

	for i := range p.inputs {
		p.inputs[i].SetValue("")
		p.inputs[i].Blur()
	}
}
