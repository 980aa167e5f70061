package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/balkashynov/wrkday/internal/clock"
	"github.com/balkashynov/wrkday/internal/db"
	"github.com/balkashynov/wrkday/internal/engine"
	"github.com/balkashynov/wrkday/internal/models"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "wrkday",
	Short: "An employee self-service CLI",
	Long: `wrkday is a command-line employee self-service portal.
Track your attendance, manage leave requests against your balances,
and keep tasks and project progress up to date from the terminal.`,
}

// initDB initializes the database and panics on error
func initDB() {
	if err := db.Initialize(); err != nil {
		panic(err) // For now, panic on DB init failure
	}
}

// consoleNotifier prints emitted engine events to the terminal.
type consoleNotifier struct{}

func (consoleNotifier) LeaveSubmitted(category models.LeaveCategory, days float64) {
	fmt.Printf("🔔 Leave request submitted: %s, %.1f day(s)\n", category, days)
}

// openEngine initializes the database and builds the engine over the
// stored session state.
func openEngine() *engine.Engine {
	initDB()
	e, err := engine.Open(clock.System{}, db.NewStore(), engine.WithNotifier(consoleNotifier{}))
	if err != nil {
		panic(err)
	}
	return e
}

// warnSaveErr surfaces a persistence failure after a mutation. The
// mutation itself stands; storage catches up on the next write.
func warnSaveErr(e *engine.Engine) {
	if err := e.SaveErr(); err != nil {
		fmt.Printf("⚠️  Warning: failed to save: %v\n", err)
	}
}

// SetVersion sets the version information
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("wrkday %s (commit %s, built %s)\n", version, commit, date)
	},
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// Add subcommands here
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(inCmd)
	rootCmd.AddCommand(outCmd)
	rootCmd.AddCommand(breakCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(leaveCmd)
	rootCmd.AddCommand(taskCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(projectsCmd)
	rootCmd.AddCommand(helpCmd)
	rootCmd.AddCommand(versionCmd)
}
