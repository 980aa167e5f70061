package commands

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/balkashynov/wrkday/internal/clock"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show attendance history for a month",
	Long:  "Show attendance records and the hours summary for a month (defaults to the current one)",
	Run: func(cmd *cobra.Command, args []string) {
		e := openEngine()

		now := time.Now()
		month := time.Month(mustIntFlag(cmd, "month", int(now.Month())))
		year := mustIntFlag(cmd, "year", now.Year())
		if !clock.ValidMonth(month) {
			fmt.Printf("Error: invalid month %d, expected 1-12\n", int(month))
			return
		}

		records := e.History(month, year)
		if len(records) == 0 {
			fmt.Printf("No attendance records for %s %d.\n", month, year)
			return
		}

		fmt.Printf("%-12s %-9s %-9s %-7s %-8s %s\n", "DATE", "IN", "OUT", "BREAKS", "HOURS", "STATUS")
		fmt.Println(strings.Repeat("-", 58))
		for _, rec := range records {
			out := "-"
			hours := "-"
			if rec.CheckOutTime != nil {
				out = rec.CheckOutTime.Format("15:04")
				hours = fmt.Sprintf("%.2f", rec.TotalHours)
			}
			fmt.Printf("%-12s %-9s %-9s %-7d %-8s %s\n",
				rec.Date.Format("02/01/2006"),
				rec.CheckInTime.Format("15:04"),
				out,
				rec.BreakMinutesTotal,
				hours,
				rec.Status)
		}

		sum := e.MonthlySummary(month, year)
		fmt.Println(strings.Repeat("-", 58))
		fmt.Printf("%d closed day(s), %.2fh total, %.2fh average\n", sum.Days, sum.TotalHours, sum.AvgHours)
	},
}

// mustIntFlag reads an int flag with a fallback for the zero value.
func mustIntFlag(cmd *cobra.Command, name string, fallback int) int {
	value, _ := cmd.Flags().GetInt(name)
	if value == 0 {
		return fallback
	}
	return value
}

func init() {
	historyCmd.Flags().IntP("month", "m", 0, "Month (1-12), defaults to current")
	historyCmd.Flags().IntP("year", "y", 0, "Year, defaults to current")
}
