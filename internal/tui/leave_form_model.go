package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/balkashynov/wrkday/internal/engine"
	"github.com/balkashynov/wrkday/internal/models"
	"github.com/balkashynov/wrkday/internal/parser"
)

// leaveStep represents the current step in the apply-leave wizard
type leaveStep int

const (
	stepCategory leaveStep = iota
	stepStartDate
	stepEndDate
	stepHalfDay
	stepReason
	stepContact
	stepSubmit
)

var leaveFieldLabels = []string{
	"Category",
	"Start date",
	"End date",
	"Half day",
	"Reason",
	"Emergency contact",
}

// LeaveFormModel represents the TUI model for applying for leave
type LeaveFormModel struct {
	currentStep leaveStep
	inputs      []textinput.Model
	width       int
	height      int

	engine *engine.Engine

	// State
	err           error
	created       *models.LeaveRequest
	cancelled     bool
	validationErr string
}

// NewLeaveFormModel creates a new apply-leave form
func NewLeaveFormModel(e *engine.Engine) LeaveFormModel {
	inputs := make([]textinput.Model, 6)

	for i := range inputs {
		inputs[i] = textinput.New()
		inputs[i].Width = 50
		inputs[i].TextStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorPrimaryText))
		inputs[i].PlaceholderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorPlaceholder))
		inputs[i].Cursor.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorAccentBright))
	}

	inputs[stepCategory].Placeholder = "vacation / sick / personal / maternity (required)"
	inputs[stepCategory].Focus()
	inputs[stepCategory].CharLimit = 20

	inputs[stepStartDate].Placeholder = "dd/mm/yyyy, yyyy-mm-dd, today, tomorrow (required)"
	inputs[stepStartDate].CharLimit = 20

	inputs[stepEndDate].Placeholder = "dd/mm/yyyy, yyyy-mm-dd, today, tomorrow (required)"
	inputs[stepEndDate].CharLimit = 20

	inputs[stepHalfDay].Placeholder = "y/n (Enter for no - counts as 0.5 days if yes)"
	inputs[stepHalfDay].CharLimit = 3

	inputs[stepReason].Placeholder = "Reason for the leave... (required)"
	inputs[stepReason].CharLimit = 200

	inputs[stepContact].Placeholder = "Phone or name while away (Enter to skip)"
	inputs[stepContact].CharLimit = 60

	return LeaveFormModel{
		currentStep: stepCategory,
		inputs:      inputs,
		engine:      e,
	}
}

// Init initializes the model
func (m LeaveFormModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages
func (m LeaveFormModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.cancelled = true
			return m, tea.Quit

		case "enter":
			return m.handleEnter()

		case "tab", "down":
			return m.nextStep()

		case "shift+tab", "up":
			return m.prevStep()
		}
	}

	// Update the focused input
	var cmd tea.Cmd
	if m.currentStep < stepSubmit {
		m.inputs[m.currentStep], cmd = m.inputs[m.currentStep].Update(msg)
	}
	return m, cmd
}

// handleEnter advances through the wizard and submits on the last step
func (m LeaveFormModel) handleEnter() (tea.Model, tea.Cmd) {
	if m.currentStep == stepSubmit {
		return m.submit()
	}
	return m.nextStep()
}

func (m LeaveFormModel) nextStep() (tea.Model, tea.Cmd) {
	m.validationErr = ""

	if m.currentStep < stepSubmit {
		m.inputs[m.currentStep].Blur()
		m.currentStep++
	}
	if m.currentStep < stepSubmit {
		m.inputs[m.currentStep].Focus()
		return m, textinput.Blink
	}
	return m, nil
}

func (m LeaveFormModel) prevStep() (tea.Model, tea.Cmd) {
	m.validationErr = ""

	if m.currentStep > stepCategory {
		if m.currentStep < stepSubmit {
			m.inputs[m.currentStep].Blur()
		}
		m.currentStep--
		m.inputs[m.currentStep].Focus()
		return m, textinput.Blink
	}
	return m, nil
}

// submit validates the form through the engine; engine errors come back
// as field-level messages, not as a crash out of the form.
func (m LeaveFormModel) submit() (tea.Model, tea.Cmd) {
	req := engine.ApplyLeaveRequest{
		Category:         models.LeaveCategory(strings.ToLower(strings.TrimSpace(m.inputs[stepCategory].Value()))),
		Reason:           strings.TrimSpace(m.inputs[stepReason].Value()),
		EmergencyContact: strings.TrimSpace(m.inputs[stepContact].Value()),
	}

	half := strings.ToLower(strings.TrimSpace(m.inputs[stepHalfDay].Value()))
	req.HalfDay = half == "y" || half == "yes"

	start, err := parser.ParseDate(m.inputs[stepStartDate].Value())
	if err != nil {
		m.validationErr = "Start date: " + err.Error()
		return m, nil
	}
	end, err := parser.ParseDate(m.inputs[stepEndDate].Value())
	if err != nil {
		m.validationErr = "End date: " + err.Error()
		return m, nil
	}
	if start != nil {
		req.StartDate = *start
	}
	if end != nil {
		req.EndDate = *end
	}

	created, err := m.engine.ApplyLeave(req)
	if err != nil {
		m.validationErr = err.Error()
		return m, nil
	}

	m.created = created
	return m, tea.Quit
}

// View renders the form
func (m LeaveFormModel) View() string {
	if m.cancelled || m.created != nil {
		return "" // Don't show anything, let TUI handle exit message
	}

	titleStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccentBright)).
		Bold(true)
	labelStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorPrimaryText)).
		Bold(true)
	doneStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorDisabledText))
	activeMarker := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccentMain)).
		Bold(true)

	var b strings.Builder
	b.WriteString(titleStyle.Render("📨 APPLY FOR LEAVE"))
	b.WriteString("\n\n")

	for i, label := range leaveFieldLabels {
		step := leaveStep(i)
		marker := "  "
		style := doneStyle
		if step == m.currentStep {
			marker = activeMarker.Render("> ")
			style = labelStyle
		}

		b.WriteString(marker + style.Render(label) + "\n")
		if step == m.currentStep {
			b.WriteString("  " + m.inputs[i].View() + "\n")
		} else if value := m.inputs[i].Value(); value != "" {
			b.WriteString("  " + doneStyle.Render(value) + "\n")
		}
		b.WriteString("\n")
	}

	if m.currentStep == stepSubmit {
		submitStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorSuccess)).
			Bold(true)
		b.WriteString(submitStyle.Render("> Press Enter to submit") + "\n\n")
	}

	if m.validationErr != "" {
		errStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorError))
		b.WriteString(errStyle.Render("✗ "+m.validationErr) + "\n\n")
	}

	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorHelpText))
	b.WriteString(helpStyle.Render("enter next  •  tab/↓ ↑ move  •  esc cancel"))

	formStyle := lipgloss.NewStyle().
		Padding(1, 3).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorBorder))

	return formStyle.Render(b.String())
}
