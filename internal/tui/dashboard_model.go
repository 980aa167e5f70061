package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/balkashynov/wrkday/internal/engine"
	"github.com/balkashynov/wrkday/internal/models"
)

// DashboardModel represents the TUI model for the live attendance view
type DashboardModel struct {
	width  int
	height int

	engine *engine.Engine
	record *models.AttendanceRecord

	// Timer state
	elapsed    time.Duration
	lastUpdate time.Time

	// Animation state
	pulse int

	// UI state
	checkingOut bool
	exiting     bool
	checkedOut  *models.AttendanceRecord
	err         error
}

// dashTickMsg is sent every second to update the worked-time clock
type dashTickMsg struct{}

// pulseTickMsg drives the header animation
type pulseTickMsg struct{}

// NewDashboardModel creates a dashboard over the engine's open session
func NewDashboardModel(e *engine.Engine) DashboardModel {
	rec := e.TodayRecord()
	m := DashboardModel{
		engine:     e,
		record:     rec,
		lastUpdate: time.Now(),
	}
	if rec != nil {
		m.elapsed = workedSoFar(rec, time.Now())
	}
	return m
}

// workedSoFar is the running net working time: elapsed since check-in
// minus logged breaks, floored at zero like the frozen total would be.
func workedSoFar(rec *models.AttendanceRecord, now time.Time) time.Duration {
	d := now.Sub(rec.CheckInTime) - time.Duration(rec.BreakMinutesTotal)*time.Minute
	if d < 0 {
		return 0
	}
	return d
}

// Init starts the tickers
func (m DashboardModel) Init() tea.Cmd {
	return tea.Batch(
		tea.Tick(time.Second, func(t time.Time) tea.Msg {
			return dashTickMsg{}
		}),
		tea.Tick(500*time.Millisecond, func(t time.Time) tea.Msg {
			return pulseTickMsg{}
		}),
	)
}

// Update handles messages
func (m DashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case dashTickMsg:
		now := time.Now()
		if m.record != nil {
			m.elapsed = workedSoFar(m.record, now)
		}
		m.lastUpdate = now

		if !m.checkingOut && !m.exiting {
			return m, tea.Tick(time.Second, func(t time.Time) tea.Msg {
				return dashTickMsg{}
			})
		}
		return m, nil

	case pulseTickMsg:
		m.pulse = (m.pulse + 1) % 2

		if !m.checkingOut && !m.exiting {
			return m, tea.Tick(500*time.Millisecond, func(t time.Time) tea.Msg {
				return pulseTickMsg{}
			})
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "o", "O":
			// Check out and leave
			m.checkingOut = true
			m.checkedOut, m.err = m.engine.CheckOut()
			return m, tea.Quit
		case "ctrl+c", "esc", "q":
			// Leave the session running
			m.exiting = true
			return m, tea.Quit
		}
	}

	return m, nil
}

// View renders the dashboard
func (m DashboardModel) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}
	if m.record == nil {
		return "No open session."
	}

	helpBar := m.renderHelpBar()
	contentHeight := m.height - 2

	if m.width < 90 {
		// Narrow view: just the clock panel, full width
		return lipgloss.JoinVertical(
			lipgloss.Left,
			m.renderClockPanel(m.width, contentHeight),
			helpBar,
		)
	}

	// Wide view: split screen
	leftWidth := m.width / 2
	rightWidth := m.width - leftWidth - 2

	content := lipgloss.JoinHorizontal(
		lipgloss.Top,
		m.renderClockPanel(leftWidth, contentHeight),
		"  ",
		m.renderDetailsPanel(rightWidth, contentHeight),
	)

	return lipgloss.JoinVertical(
		lipgloss.Left,
		content,
		helpBar,
	)
}

// renderClockPanel renders the left panel with the big worked-time clock
func (m DashboardModel) renderClockPanel(width, height int) string {
	var components []string

	pulseChars := []string{"●", "○"}
	headerText := fmt.Sprintf("%s  ON THE CLOCK  %s", pulseChars[m.pulse], pulseChars[m.pulse])

	headerStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccentBright)).
		Bold(true).
		Align(lipgloss.Center).
		Width(width)
	components = append(components, headerStyle.Render(headerText))

	dateStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccentMain)).
		Bold(true).
		Align(lipgloss.Center).
		Width(width)
	components = append(components, dateStyle.Render(m.record.Date.Format("Monday, 02 January")))

	clockDisplay := renderBigClock(m.elapsed)
	clockContent := ""
	for _, line := range strings.Split(clockDisplay, "\n") {
		centeredLine := lipgloss.NewStyle().
			Align(lipgloss.Center).
			Width(width).
			Render(line)
		clockContent += centeredLine + "\n"
	}
	components = append(components, strings.TrimRight(clockContent, "\n"))

	sessionInfo := fmt.Sprintf("Checked in at %s", m.record.CheckInTime.Format("15:04:05"))
	sessionStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorSecondaryText)).
		Italic(true).
		Align(lipgloss.Center).
		Width(width)
	components = append(components, sessionStyle.Render(sessionInfo))

	content := strings.Join(components, "\n\n")

	panelStyle := lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center)

	return panelStyle.Render(content)
}

// renderDetailsPanel renders the right panel with today's numbers and
// the leave balances
func (m DashboardModel) renderDetailsPanel(width, height int) string {
	labelStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorDisabledText))
	valueStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorPrimaryText)).Bold(true)
	titleStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccentBright)).
		Bold(true)

	var lines []string
	lines = append(lines, titleStyle.Render("TODAY"))
	lines = append(lines, "")
	lines = append(lines,
		labelStyle.Render("Checked in   ")+valueStyle.Render(m.record.CheckInTime.Format("15:04:05")))
	lines = append(lines,
		labelStyle.Render("Breaks       ")+valueStyle.Render(fmt.Sprintf("%d min", m.record.BreakMinutesTotal)))
	lines = append(lines,
		labelStyle.Render("Worked       ")+valueStyle.Render(fmt.Sprintf("%.2fh", m.elapsed.Hours())))

	lines = append(lines, "")
	lines = append(lines, titleStyle.Render("LEAVE BALANCES"))
	lines = append(lines, "")
	balances := m.engine.LeaveBalances()
	if len(balances) == 0 {
		lines = append(lines, labelStyle.Render("none configured"))
	}
	for _, category := range []models.LeaveCategory{
		models.LeaveVacation, models.LeaveSick, models.LeavePersonal, models.LeaveMaternity,
	} {
		bal, ok := balances[category]
		if !ok {
			continue
		}
		lines = append(lines,
			labelStyle.Render(fmt.Sprintf("%-12s ", category))+
				valueStyle.Render(fmt.Sprintf("%.1f left", bal.Remaining())))
	}

	content := strings.Join(lines, "\n")

	panelStyle := lipgloss.NewStyle().
		Width(width).
		Height(height).
		Padding(1, 2).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorBorder))

	return panelStyle.Render(content)
}

// renderHelpBar renders the bottom key hints
func (m DashboardModel) renderHelpBar() string {
	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHelpText)).
		Width(m.width).
		Align(lipgloss.Center)

	return helpStyle.Render("o check out  •  esc/q leave it running")
}

// renderBigClock renders the HH:MM:SS ASCII art clock
func renderBigClock(d time.Duration) string {
	hours := int(d.Hours())
	minutes := int(d.Minutes()) % 60
	seconds := int(d.Seconds()) % 60

	// ASCII art for digits (5x5 characters each)
	digits := map[rune][]string{
		'0': {" ███ ", "█   █", "█   █", "█   █", " ███ "},
		'1': {"  █  ", " ██  ", "  █  ", "  █  ", "█████"},
		'2': {" ███ ", "█   █", "   █ ", "  █  ", "█████"},
		'3': {" ███ ", "█   █", "  ██ ", "█   █", " ███ "},
		'4': {"█   █", "█   █", "█████", "    █", "    █"},
		'5': {"█████", "█    ", "████ ", "    █", "████ "},
		'6': {" ███ ", "█    ", "████ ", "█   █", " ███ "},
		'7': {"█████", "    █", "   █ ", "  █  ", " █   "},
		'8': {" ███ ", "█   █", " ███ ", "█   █", " ███ "},
		'9': {" ███ ", "█   █", " ████", "    █", " ███ "},
		':': {"     ", "  █  ", "     ", "  █  ", "     "},
	}

	timeStr := fmt.Sprintf("%02d:%02d:%02d", hours, minutes, seconds)

	var rows [5]string
	for _, ch := range timeStr {
		glyph, ok := digits[ch]
		if !ok {
			continue
		}
		for i := 0; i < 5; i++ {
			rows[i] += glyph[i] + " "
		}
	}

	clockStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorAccentMain)).Bold(true)
	var out []string
	for _, row := range rows {
		out = append(out, clockStyle.Render(strings.TrimRight(row, " ")))
	}
	return strings.Join(out, "\n")
}
