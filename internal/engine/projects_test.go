package engine

import (
	"testing"

	"github.com/balkashynov/wrkday/internal/models"
)

func boardWithProject(t *testing.T) (*Engine, uint) {
	t.Helper()
	e, _ := newTestEngine()

	a, err := e.AddTask(CreateTaskRequest{Title: "design", Project: "portal"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := e.AddTask(CreateTaskRequest{Title: "build", Project: "portal"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := e.AddTask(CreateTaskRequest{Title: "unrelated"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return e, *a.ProjectID
}

func TestProgressOf_AveragesTaskProgress(t *testing.T) {
	e, projectID := boardWithProject(t)
	tasks := e.ListTasks("", -1)

	e.UpdateTaskProgress(tasks[0].ID, 80)
	e.UpdateTaskProgress(tasks[1].ID, 20)
	e.UpdateTaskProgress(tasks[2].ID, 100) // not in the project

	if got := e.ProgressOf(projectID); got != 50 {
		t.Errorf("progress = %d, want 50", got)
	}
}

func TestProgressOf_NoTasksIsZero(t *testing.T) {
	e, _ := newTestEngine()
	project := e.findOrCreateProject("empty")

	if got := e.ProgressOf(project.ID); got != 0 {
		t.Errorf("progress of empty project = %d, want 0", got)
	}
	completed, total := e.TaskCounts(project.ID)
	if completed != 0 || total != 0 {
		t.Errorf("counts = (%d, %d), want (0, 0)", completed, total)
	}
}

func TestTaskCounts(t *testing.T) {
	e, projectID := boardWithProject(t)
	tasks := e.ListTasks("", -1)

	e.UpdateTaskStatus(tasks[0].ID, models.TaskCompleted)

	completed, total := e.TaskCounts(projectID)
	if completed != 1 || total != 2 {
		t.Errorf("counts = (%d, %d), want (1, 2)", completed, total)
	}
}

func TestListProjects_FillsRollups(t *testing.T) {
	e, projectID := boardWithProject(t)
	tasks := e.ListTasks("", -1)

	e.UpdateTaskStatus(tasks[0].ID, models.TaskCompleted) // forces progress 100
	e.UpdateTaskProgress(tasks[1].ID, 50)

	projects := e.ListProjects("")
	if len(projects) != 1 {
		t.Fatalf("expected 1 project, got %d", len(projects))
	}
	p := projects[0]
	if p.ID != projectID {
		t.Fatalf("unexpected project %+v", p)
	}
	if p.Progress != 75 {
		t.Errorf("rollup progress = %d, want 75", p.Progress)
	}
	if p.CompletedTaskCount != 1 || p.TaskCount != 2 {
		t.Errorf("rollup counts = (%d, %d), want (1, 2)", p.CompletedTaskCount, p.TaskCount)
	}
}

func TestListProjects_StatusFilter(t *testing.T) {
	e, _ := newTestEngine()
	e.findOrCreateProject("alpha")
	beta := e.findOrCreateProject("beta")
	beta.Status = models.ProjectOnHold

	if got := e.ListProjects(models.ProjectActive); len(got) != 1 || got[0].Name != "alpha" {
		t.Errorf("active filter: got %+v", got)
	}
	if got := e.ListProjects(""); len(got) != 2 {
		t.Errorf("unfiltered: got %d, want 2", len(got))
	}
}

func TestProjectByID(t *testing.T) {
	e, projectID := boardWithProject(t)

	p, err := e.ProjectByID(projectID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.TaskCount != 2 {
		t.Errorf("task count = %d, want 2", p.TaskCount)
	}

	if _, err := e.ProjectByID(999); CodeOf(err) != CodeNotFound {
		t.Errorf("expected NotFound, got %v", err)
	}
}
