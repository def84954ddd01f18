package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/conectavoz/conectavoz/internal/health"
)

type statusMsg health.Status

type tickMsg time.Time

// MonitorModel is the live backend reachability view: one probe
// immediately, then one per checker interval until the user quits.
type MonitorModel struct {
	checker   *health.Checker
	serverURL string
	styles    Styles
	spinner   spinner.Model

	status   *health.Status
	checks   int
	quitting bool
}

// NewMonitor creates the monitor view.
func NewMonitor(checker *health.Checker, serverURL string) MonitorModel {
	sp := spinner.New()
	sp.Spinner = spinner.Dot

	return MonitorModel{
		checker:   checker,
		serverURL: serverURL,
		styles:    DefaultStyles(),
		spinner:   sp,
	}
}

func (m MonitorModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.probe())
}

func (m MonitorModel) probe() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return statusMsg(m.checker.Check(ctx))
	}
}

func (m MonitorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			m.quitting = true
			return m, tea.Quit
		}
		return m, nil

	case statusMsg:
		status := health.Status(msg)
		m.status = &status
		m.checks++
		return m, tea.Tick(m.checker.Interval(), func(t time.Time) tea.Msg {
			return tickMsg(t)
		})

	case tickMsg:
		return m, m.probe()

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m MonitorModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString(m.styles.Title.Render("ConectaVoz connection status"))
	b.WriteString("\n\n")

	b.WriteString(m.styles.Muted.Render("Backend: "))
	b.WriteString(m.styles.Subtitle.Render(m.serverURL))
	b.WriteString("\n\n")

	b.WriteString(m.renderStatus())
	b.WriteString("\n\n")

	b.WriteString(m.styles.Muted.Render(
		fmt.Sprintf("checks: %d · interval: %s · press q to quit", m.checks, m.checker.Interval())))
	b.WriteString("\n")

	return m.styles.Border.Render(b.String())
}

func (m MonitorModel) renderStatus() string {
	if m.status == nil {
		return m.spinner.View() + m.styles.Muted.Render(" checking connection...")
	}

	line := RenderStatus(m.styles, *m.status)
	checked := m.styles.Muted.Render("last check " + m.status.CheckedAt.Format("15:04:05"))
	return line + "\n" + checked
}

// RenderStatus formats a single probe result as one styled line. Shared
// with the non-interactive monitor output.
func RenderStatus(styles Styles, status health.Status) string {
	if status.Reachable {
		return styles.Success.Render("● backend connected") +
			styles.Muted.Render(fmt.Sprintf(" (%s)", status.Latency.Round(time.Millisecond)))
	}
	return styles.Error.Render("● backend disconnected")
}

// RunMonitor runs the live monitor until the user quits.
func RunMonitor(checker *health.Checker, serverURL string) error {
	program := tea.NewProgram(NewMonitor(checker, serverURL))
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("monitor failed: %w", err)
	}
	return nil
}
