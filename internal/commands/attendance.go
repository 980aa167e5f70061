package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/balkashynov/wrkday/internal/models"
	"github.com/balkashynov/wrkday/internal/parser"
	"github.com/balkashynov/wrkday/internal/tui"
)

var inCmd = &cobra.Command{
	Use:   "in",
	Short: "Check in for the day",
	Run: func(cmd *cobra.Command, args []string) {
		e := openEngine()

		rec, err := e.CheckIn()
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		warnSaveErr(e)

		fmt.Printf("🟢 Checked in at %s\n", rec.CheckInTime.Format("15:04:05"))
	},
}

var outCmd = &cobra.Command{
	Use:   "out",
	Short: "Check out for the day",
	Run: func(cmd *cobra.Command, args []string) {
		e := openEngine()

		rec, err := e.CheckOut()
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		warnSaveErr(e)

		fmt.Printf("🔴 Checked out at %s\n", rec.CheckOutTime.Format("15:04:05"))
		fmt.Printf("Worked %.2fh today (%d min of breaks)\n", rec.TotalHours, rec.BreakMinutesTotal)
	},
}

var breakCmd = &cobra.Command{
	Use:   "break <duration>",
	Short: "Log break time against today's session",
	Long: `Log break time against today's open attendance session.

Examples:
  wrkday break 30m     # 30 minutes
  wrkday break 1h      # 1 hour
  wrkday break 45      # bare number means minutes`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		minutes, err := parser.ParseBreakMinutes(args[0])
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		e := openEngine()
		rec, err := e.TakeBreak(minutes)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		warnSaveErr(e)

		fmt.Printf("☕ Break logged: %d min (%d min total today)\n", minutes, rec.BreakMinutesTotal)
	},
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show today's attendance status",
	Run: func(cmd *cobra.Command, args []string) {
		e := openEngine()

		ui, _ := cmd.Flags().GetBool("ui")
		if ui {
			if e.CurrentStatus() != models.SessionIn {
				fmt.Println("Not checked in, nothing to watch")
				return
			}
			if err := tui.RunDashboardTUI(e); err != nil {
				fmt.Printf("Error: %v\n", err)
			}
			return
		}

		rec := e.TodayRecord()
		if rec == nil {
			fmt.Println("⚪ Not checked in today")
			return
		}

		if rec.Open() {
			fmt.Printf("🟢 Checked in since %s\n", rec.CheckInTime.Format("15:04:05"))
		} else {
			fmt.Printf("🔴 Checked out at %s, worked %.2fh\n",
				rec.CheckOutTime.Format("15:04:05"), rec.TotalHours)
		}
		if rec.BreakMinutesTotal > 0 {
			fmt.Printf("Breaks: %d min\n", rec.BreakMinutesTotal)
		}
	},
}

func init() {
	statusCmd.Flags().Bool("ui", false, "Watch the session in an interactive dashboard")
}
