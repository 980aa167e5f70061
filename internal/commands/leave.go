package commands

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/balkashynov/wrkday/internal/engine"
	"github.com/balkashynov/wrkday/internal/models"
	"github.com/balkashynov/wrkday/internal/parser"
	"github.com/balkashynov/wrkday/internal/tui"
)

var leaveCmd = &cobra.Command{
	Use:   "leave",
	Short: "Apply for and manage leave requests",
}

var leaveApplyCmd = &cobra.Command{
	Use:   "apply",
	Short: "Apply for leave",
	Long: `Apply for leave against your category balance.

With no flags an interactive form opens. Flags skip the form:

  wrkday leave apply -c vacation --from 07/09/2026 --to 11/09/2026 -r "family trip"
  wrkday leave apply -c sick --from today --to today --half -r "doctor appointment"`,
	Run: func(cmd *cobra.Command, args []string) {
		e := openEngine()

		category, _ := cmd.Flags().GetString("category")
		if category == "" {
			if err := tui.RunLeaveFormTUI(e); err != nil {
				fmt.Printf("Error: %v\n", err)
			}
			return
		}

		from, _ := cmd.Flags().GetString("from")
		to, _ := cmd.Flags().GetString("to")
		start, err := parser.ParseDate(from)
		if err != nil {
			fmt.Printf("Error: invalid start date: %v\n", err)
			return
		}
		end, err := parser.ParseDate(to)
		if err != nil {
			fmt.Printf("Error: invalid end date: %v\n", err)
			return
		}

		req := engine.ApplyLeaveRequest{
			Category: models.LeaveCategory(strings.ToLower(category)),
			Reason:   mustStringFlag(cmd, "reason"),
		}
		if start != nil {
			req.StartDate = *start
		}
		if end != nil {
			req.EndDate = *end
		}
		req.HalfDay, _ = cmd.Flags().GetBool("half")
		req.EmergencyContact, _ = cmd.Flags().GetString("contact")

		leave, err := e.ApplyLeave(req)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		warnSaveErr(e)

		fmt.Printf("📨 Leave request #%d created: %s, %s - %s, %.1f day(s), pending approval\n",
			leave.ID, leave.Category,
			leave.StartDate.Format("02/01/2006"), leave.EndDate.Format("02/01/2006"),
			leave.Days)
	},
}

var leaveListCmd = &cobra.Command{
	Use:     "ls",
	Aliases: []string{"list"},
	Short:   "List leave requests",
	Run: func(cmd *cobra.Command, args []string) {
		e := openEngine()

		status, _ := cmd.Flags().GetString("status")
		leaves := e.ListLeaves(models.LeaveStatus(status))
		if len(leaves) == 0 {
			fmt.Println("No leave requests found.")
			return
		}

		fmt.Printf("%-4s %-10s %-12s %-12s %-6s %-10s %s\n", "ID", "CATEGORY", "FROM", "TO", "DAYS", "STATUS", "REASON")
		fmt.Println(strings.Repeat("-", 72))
		for _, leave := range leaves {
			reason := leave.Reason
			if len(reason) > 20 {
				reason = reason[:17] + "..."
			}
			fmt.Printf("%-4d %-10s %-12s %-12s %-6.1f %-10s %s\n",
				leave.ID,
				leave.Category,
				leave.StartDate.Format("02/01/2006"),
				leave.EndDate.Format("02/01/2006"),
				leave.Days,
				leave.Status,
				reason)
		}
	},
}

var leaveBalanceCmd = &cobra.Command{
	Use:   "balance",
	Short: "Show per-category leave balances",
	Run: func(cmd *cobra.Command, args []string) {
		e := openEngine()

		balances := e.LeaveBalances()
		if len(balances) == 0 {
			fmt.Println("No leave balances configured. Run 'wrkday init' first.")
			return
		}

		categories := make([]models.LeaveCategory, 0, len(balances))
		for category := range balances {
			categories = append(categories, category)
		}
		sort.Slice(categories, func(i, j int) bool { return categories[i] < categories[j] })

		fmt.Printf("%-12s %-8s %-8s %s\n", "CATEGORY", "TOTAL", "USED", "REMAINING")
		fmt.Println(strings.Repeat("-", 40))
		for _, category := range categories {
			bal := balances[category]
			fmt.Printf("%-12s %-8.1f %-8.1f %.1f\n", bal.Category, bal.TotalDays, bal.UsedDays, bal.Remaining())
		}
	},
}

var leaveCancelCmd = &cobra.Command{
	Use:   "cancel <request-id>",
	Short: "Cancel a pending leave request",
	Args:  cobra.ExactArgs(1),
	Run:   leaveLifecycleRun("cancel", "🚫 Cancelled leave request #%d\n"),
}

var leaveApproveCmd = &cobra.Command{
	Use:   "approve <request-id>",
	Short: "Approve a pending leave request (approver action)",
	Args:  cobra.ExactArgs(1),
	Run:   leaveLifecycleRun("approve", "✅ Approved leave request #%d, balance debited\n"),
}

var leaveRejectCmd = &cobra.Command{
	Use:   "reject <request-id>",
	Short: "Reject a pending leave request (approver action)",
	Args:  cobra.ExactArgs(1),
	Run:   leaveLifecycleRun("reject", "❌ Rejected leave request #%d\n"),
}

// leaveLifecycleRun builds the shared run function for the three
// pending-only transitions.
func leaveLifecycleRun(action, doneFormat string) func(*cobra.Command, []string) {
	return func(cmd *cobra.Command, args []string) {
		requestID, err := strconv.ParseUint(args[0], 10, 32)
		if err != nil {
			fmt.Printf("Error: invalid request ID '%s'\n", args[0])
			return
		}

		e := openEngine()
		switch action {
		case "cancel":
			_, err = e.CancelLeave(uint(requestID))
		case "approve":
			_, err = e.Approve(uint(requestID))
		case "reject":
			_, err = e.Reject(uint(requestID))
		}
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		warnSaveErr(e)

		fmt.Printf(doneFormat, requestID)
	}
}

// mustStringFlag reads a string flag, empty when unset.
func mustStringFlag(cmd *cobra.Command, name string) string {
	value, _ := cmd.Flags().GetString(name)
	return value
}

func init() {
	leaveApplyCmd.Flags().StringP("category", "c", "", "Leave category: vacation, sick, personal, maternity")
	leaveApplyCmd.Flags().String("from", "", "Start date (dd/mm/yyyy, yyyy-mm-dd, today, tomorrow)")
	leaveApplyCmd.Flags().String("to", "", "End date")
	leaveApplyCmd.Flags().Bool("half", false, "Half-day leave (counts as 0.5 days)")
	leaveApplyCmd.Flags().StringP("reason", "r", "", "Reason for the leave")
	leaveApplyCmd.Flags().String("contact", "", "Emergency contact while away")

	leaveListCmd.Flags().StringP("status", "s", "", "Filter by status: pending, approved, rejected, cancelled")

	leaveCmd.AddCommand(leaveApplyCmd)
	leaveCmd.AddCommand(leaveListCmd)
	leaveCmd.AddCommand(leaveBalanceCmd)
	leaveCmd.AddCommand(leaveCancelCmd)
	leaveCmd.AddCommand(leaveApproveCmd)
	leaveCmd.AddCommand(leaveRejectCmd)
}
