package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

var helpCmd = &cobra.Command{
	Use:   "help",
	Short: "Show comprehensive help for wrkday",
	Long:  `Display detailed help for all wrkday commands and flags.`,
	Run: func(cmd *cobra.Command, args []string) {
		showCustomHelp()
	},
}

func showCustomHelp() {
	fmt.Print(`
██╗    ██╗██████╗ ██╗  ██╗██████╗  █████╗ ██╗   ██╗
██║    ██║██╔══██╗██║ ██╔╝██╔══██╗██╔══██╗╚██╗ ██╔╝
██║ █╗ ██║██████╔╝█████╔╝ ██║  ██║███████║ ╚████╔╝
██║███╗██║██╔══██╗██╔═██╗ ██║  ██║██╔══██║  ╚██╔╝
╚███╔███╔╝██║  ██║██║  ██╗██████╔╝██║  ██║   ██║
 ╚══╝╚══╝ ╚═╝  ╚═╝╚═╝  ╚═╝╚═════╝ ╚═╝  ╚═╝   ╚═╝

wrkday - Employee Self-Service CLI

ATTENDANCE:

  in                      Check in for the day
  out                     Check out and freeze today's hours
  break <dur>             Log break time (45, 30m, 1h, 1h15m)
  status                  Show today's session
    --ui                  Watch it live in an interactive dashboard
  history                 Month's records and hours summary
    -m, --month           Month (1-12), defaults to current
    -y, --year            Year, defaults to current

LEAVE:

  leave apply             Apply for leave (interactive form without flags)
    -c, --category        vacation|sick|personal|maternity
    --from, --to          Dates (dd/mm/yyyy, yyyy-mm-dd, today, tomorrow)
    --half                Half-day (counts as 0.5 days)
    -r, --reason          Reason
    --contact             Emergency contact
  leave ls                List requests
    -s, --status          pending|approved|rejected|cancelled
  leave balance           Per-category balances
  leave cancel <id>       Cancel a pending request
  leave approve <id>      Approve a pending request (approver)
  leave reject <id>       Reject a pending request (approver)

TASKS & PROJECTS:

  task add <desc>         Create a task with smart parsing
    Smart syntax:
      #hashtags     Auto-create tags
      @project      Attach to a project (created on first use)
      +priority     Set priority (low/medium/high)
      due:3days     Set due date
  task status <id> <st>   Move a task (completed forces progress 100)
  task progress <id> <n>  Set progress 0-100 (never changes status)
  ls                      List tasks
    -s, --status          todo|in-progress|completed
    -p, --priority        low|medium|high
  projects                List projects with derived progress rollups
    -s, --status          active|on-hold|completed

SETUP:

  init                    Seed leave balances (see --vacation etc.)
    --reset               Wipe all stored state first
  version                 Show version information
  help                    Show this help

`)
}
