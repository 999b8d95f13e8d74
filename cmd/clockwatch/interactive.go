package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/clockwerk-io/systime"
	"github.com/clockwerk-io/systime/calendar"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	clockStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	metaStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#90EE90"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

const refreshInterval = 100 * time.Millisecond

type reading struct {
	name  string
	value float64
	err   error
}

type watchModel struct {
	format   textinput.Model
	readings []reading
	local    calendar.StructTime
	localErr error
	editing  bool
}

type tickMsg time.Time

func newWatchModel() *watchModel {
	ti := textinput.New()
	ti.Placeholder = "%Y-%m-%d %H:%M:%S"
	ti.Prompt = "format: "
	ti.Width = 40
	ti.SetValue("%a %b %d %H:%M:%S %Y")
	return &watchModel{format: ti}
}

func (m *watchModel) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(refreshInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m *watchModel) sample() {
	m.readings = m.readings[:0]
	for _, name := range clockNames {
		value, err := readClock(name)
		m.readings = append(m.readings, reading{name: name, value: value, err: err})
	}
	m.local, m.localErr = systime.LocaltimeNow()
}

func (m *watchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			if !m.editing || msg.String() == "ctrl+c" {
				return m, tea.Quit
			}

		case "enter":
			if m.editing {
				m.format.Blur()
				m.editing = false
				return m, nil
			}

		case "f":
			if !m.editing {
				m.editing = true
				return m, m.format.Focus()
			}

		case "esc":
			if m.editing {
				m.format.Blur()
				m.editing = false
				return m, nil
			}
		}

	case tickMsg:
		m.sample()
		return m, tick()
	}

	if m.editing {
		var cmd tea.Cmd
		m.format, cmd = m.format.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m *watchModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("clockwatch"))
	b.WriteString("\n\n")

	if len(m.readings) == 0 {
		b.WriteString("Reading clocks...\n")
		return b.String()
	}

	for _, r := range m.readings {
		b.WriteString(fmt.Sprintf("  %s ", clockStyle.Render(fmt.Sprintf("%-13s", r.name))))
		if r.err != nil {
			b.WriteString(errorStyle.Render(fmt.Sprintf("unavailable: %v", r.err)))
		} else {
			b.WriteString(valueStyle.Render(fmt.Sprintf("%18.9f", r.value)))
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")

	if m.localErr != nil {
		b.WriteString(errorStyle.Render(fmt.Sprintf("local time: %v", m.localErr)))
	} else {
		b.WriteString("  " + metaStyle.Render(systime.Strftime(m.format.Value(), m.local)))
	}
	b.WriteString("\n\n")

	b.WriteString("  " + m.format.View())
	b.WriteString("\n\n")

	std, dst := systime.TZName()
	b.WriteString("  " + helpStyle.Render(fmt.Sprintf("zone %s/%s  utc offset %ds  dst offset %ds",
		std, dst, -systime.Timezone(), -systime.Altzone())))
	b.WriteString("\n\n")

	if m.editing {
		b.WriteString(helpStyle.Render("enter apply • esc cancel • ctrl+c quit"))
	} else {
		b.WriteString(helpStyle.Render("f edit format • q quit"))
	}

	return b.String()
}

func runInteractive() error {
	p := tea.NewProgram(newWatchModel(), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
