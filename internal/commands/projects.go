package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/balkashynov/wrkday/internal/models"
)

var projectsCmd = &cobra.Command{
	Use:   "projects",
	Short: "List projects with progress rollups",
	Run: func(cmd *cobra.Command, args []string) {
		e := openEngine()

		status, _ := cmd.Flags().GetString("status")
		projects := e.ListProjects(models.ProjectStatus(status))
		if len(projects) == 0 {
			fmt.Println("No projects found. Projects are created by adding tasks with @project.")
			return
		}

		fmt.Printf("%-4s %-20s %-10s %-10s %s\n", "ID", "NAME", "STATUS", "PROGRESS", "TASKS")
		fmt.Println(strings.Repeat("-", 56))
		for _, project := range projects {
			name := project.Name
			if len(name) > 18 {
				name = name[:15] + "..."
			}
			fmt.Printf("%-4d %-20s %-10s %-10s %d/%d done\n",
				project.ID,
				name,
				project.Status,
				fmt.Sprintf("%d%%", project.Progress),
				project.CompletedTaskCount,
				project.TaskCount)
		}
	},
}

func init() {
	projectsCmd.Flags().StringP("status", "s", "", "Filter by status: active, on-hold, completed")
}
