package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/balkashynov/wrkday/internal/clock"
	"github.com/balkashynov/wrkday/internal/db"
	"github.com/balkashynov/wrkday/internal/engine"
	"github.com/balkashynov/wrkday/internal/models"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Seed leave balances for a fresh session",
	Long: `Seed the per-category leave entitlements. Safe to re-run: totals are
updated in place and used days are kept, unless --reset wipes everything.

  wrkday init
  wrkday init --vacation 25 --sick 10
  wrkday init --reset`,
	Run: func(cmd *cobra.Command, args []string) {
		initDB()
		store := db.NewStore()

		if reset, _ := cmd.Flags().GetBool("reset"); reset {
			if err := store.Reset(); err != nil {
				fmt.Printf("Error: %v\n", err)
				return
			}
			fmt.Println("🗑️  Cleared all session state.")
		}

		e, err := engine.Open(clock.System{}, store)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		entitlements := map[models.LeaveCategory]float64{
			models.LeaveVacation:  floatFlag(cmd, "vacation"),
			models.LeaveSick:      floatFlag(cmd, "sick"),
			models.LeavePersonal:  floatFlag(cmd, "personal"),
			models.LeaveMaternity: floatFlag(cmd, "maternity"),
		}
		if err := e.SeedBalances(entitlements); err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		warnSaveErr(e)

		fmt.Println("🏁 Leave balances seeded:")
		for category, total := range entitlements {
			fmt.Printf("  %-12s %.1f day(s)\n", category, total)
		}
	},
}

func floatFlag(cmd *cobra.Command, name string) float64 {
	value, _ := cmd.Flags().GetFloat64(name)
	return value
}

func init() {
	initCmd.Flags().Float64("vacation", 20, "Vacation entitlement in days")
	initCmd.Flags().Float64("sick", 10, "Sick leave entitlement in days")
	initCmd.Flags().Float64("personal", 5, "Personal leave entitlement in days")
	initCmd.Flags().Float64("maternity", 90, "Maternity leave entitlement in days")
	initCmd.Flags().Bool("reset", false, "Wipe all stored state before seeding")
}
