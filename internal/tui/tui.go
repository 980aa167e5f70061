package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/balkashynov/wrkday/internal/engine"
)

// RunDashboardTUI starts the live attendance dashboard for the open
// session.
func RunDashboardTUI(e *engine.Engine) error {
	model := NewDashboardModel(e)

	p := tea.NewProgram(model, tea.WithAltScreen())
	finalModel, err := p.Run()

	// Handle exit messages after TUI closes
	if err != nil {
		return err
	}

	if m, ok := finalModel.(DashboardModel); ok {
		if m.checkedOut != nil {
			fmt.Printf("🔴 Checked out at %s\n", m.checkedOut.CheckOutTime.Format("15:04:05"))
			fmt.Printf("Worked %.2fh today (%d min of breaks)\n", m.checkedOut.TotalHours, m.checkedOut.BreakMinutesTotal)
		} else if m.err != nil {
			fmt.Printf("❌ Error: %v\n", m.err)
		}
	}

	return nil
}

// RunLeaveFormTUI starts the interactive apply-leave form.
func RunLeaveFormTUI(e *engine.Engine) error {
	model := NewLeaveFormModel(e)

	p := tea.NewProgram(model, tea.WithAltScreen())
	finalModel, err := p.Run()

	if err != nil {
		return err
	}

	if m, ok := finalModel.(LeaveFormModel); ok {
		if m.cancelled {
			fmt.Println("❌ Leave application cancelled.")
		} else if m.created != nil {
			fmt.Printf("📨 Leave request #%d created: %s, %.1f day(s), pending approval\n",
				m.created.ID, m.created.Category, m.created.Days)
		} else if m.err != nil {
			fmt.Printf("❌ Error: %v\n", m.err)
		}
	}

	return nil
}
