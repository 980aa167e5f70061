package commands

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/balkashynov/wrkday/internal/engine"
	"github.com/balkashynov/wrkday/internal/models"
	"github.com/balkashynov/wrkday/internal/parser"
)

var taskCmd = &cobra.Command{
	Use:   "task",
	Short: "Manage tasks on your board",
}

var taskAddCmd = &cobra.Command{
	Use:   "add [task description]",
	Short: "Add a new task",
	Long: `Add a new task with optional metadata.

Smart parsing syntax:
  #tag1,tag2  - Tags (comma-separated or individual)
  @project    - Project name
  +priority   - Priority (low/medium/high or 1/2/3)
  due:3days   - Due date (dd/mm/yyyy, yyyy-mm-dd, X days)

Example:
  wrkday task add "Quarterly report #finance @reporting +high due:15/12/2026"`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		parsed := parser.ParseTitle(strings.Join(args, " "))
		if len(parsed.Errors) > 0 {
			fmt.Printf("Error: %s\n", strings.Join(parsed.Errors, ", "))
			return
		}

		e := openEngine()
		task, err := e.AddTask(engine.CreateTaskRequest{
			Title:    parsed.Title,
			Project:  parsed.Project,
			Tags:     parsed.Tags,
			Priority: parser.PriorityToInt(parsed.Priority),
			DueDate:  parsed.DueDate,
		})
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		warnSaveErr(e)

		fmt.Printf("✅ New task \"%s\" added - ID: %d\n", task.Title, task.ID)
	},
}

var taskStatusCmd = &cobra.Command{
	Use:   "status <task-id> <todo|in-progress|completed>",
	Short: "Set a task's status",
	Long: `Set a task's status. Any transition is allowed; moving to completed
also sets progress to 100.`,
	Args: cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		taskID, err := strconv.ParseUint(args[0], 10, 32)
		if err != nil {
			fmt.Printf("Error: invalid task ID '%s'\n", args[0])
			return
		}

		e := openEngine()
		task, err := e.UpdateTaskStatus(uint(taskID), models.TaskStatus(args[1]))
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		warnSaveErr(e)

		fmt.Printf("📋 Task #%d is now %s (progress %d%%)\n", task.ID, task.Status, task.Progress)
	},
}

var taskProgressCmd = &cobra.Command{
	Use:   "progress <task-id> <0-100>",
	Short: "Set a task's progress percentage",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		taskID, err := strconv.ParseUint(args[0], 10, 32)
		if err != nil {
			fmt.Printf("Error: invalid task ID '%s'\n", args[0])
			return
		}
		progress, err := strconv.Atoi(args[1])
		if err != nil {
			fmt.Printf("Error: invalid progress '%s'\n", args[1])
			return
		}

		e := openEngine()
		task, err := e.UpdateTaskProgress(uint(taskID), progress)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		warnSaveErr(e)

		fmt.Printf("📈 Task #%d progress: %d%% (status %s)\n", task.ID, task.Progress, task.Status)
	},
}

var listCmd = &cobra.Command{
	Use:     "ls",
	Aliases: []string{"list"},
	Short:   "List tasks",
	Long:    "List tasks with optional filters for status and priority",
	Run: func(cmd *cobra.Command, args []string) {
		e := openEngine()

		status, _ := cmd.Flags().GetString("status")
		priority, _ := cmd.Flags().GetString("priority")

		priorityFilter := -1
		if priority != "" {
			priorityFilter = parser.PriorityToInt(priority)
		}

		tasks := e.ListTasks(models.TaskStatus(status), priorityFilter)
		if len(tasks) == 0 {
			fmt.Println("No tasks found. Use 'wrkday task add \"task description\"' to create your first task.")
			return
		}

		// Print table header
		fmt.Printf("%-4s %-12s %-9s %-40s %-8s %s\n", "ID", "STATUS", "PROGRESS", "TITLE", "PRIORITY", "TAGS")
		fmt.Println(strings.Repeat("-", 84))

		for _, task := range tasks {
			var tagNames []string
			for _, tag := range task.Tags {
				tagNames = append(tagNames, tag.Name)
			}

			priorities := []string{"", "low", "med", "high"}
			priorityStr := priorities[task.Priority]

			title := task.Title
			if len(title) > 38 {
				title = title[:35] + "..."
			}

			fmt.Printf("%-4d %-12s %-9s %-40s %-8s %s\n",
				task.ID,
				task.Status,
				fmt.Sprintf("%d%%", task.Progress),
				title,
				priorityStr,
				strings.Join(tagNames, ","))
		}
	},
}

func init() {
	listCmd.Flags().StringP("status", "s", "", "Filter by status: todo, in-progress, completed")
	listCmd.Flags().StringP("priority", "p", "", "Filter by priority: low, medium, high, none")

	taskCmd.AddCommand(taskAddCmd)
	taskCmd.AddCommand(taskStatusCmd)
	taskCmd.AddCommand(taskProgressCmd)
}
