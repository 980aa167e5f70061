package engine

import (
	"testing"

	"github.com/balkashynov/wrkday/internal/models"
)

func TestAddTask(t *testing.T) {
	e, _ := newTestEngine()

	task, err := e.AddTask(CreateTaskRequest{
		Title:    "Quarterly report",
		Project:  "reporting",
		Tags:     []string{"finance", "q3"},
		Priority: 2,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if task.Status != models.TaskTodo {
		t.Errorf("status = %s, want todo", task.Status)
	}
	if task.Progress != 0 {
		t.Errorf("progress = %d, want 0", task.Progress)
	}
	if task.ProjectID == nil {
		t.Fatal("expected the task to be attached to a project")
	}
	if len(task.Tags) != 2 {
		t.Errorf("tags = %d, want 2", len(task.Tags))
	}

	projects := e.ListProjects("")
	if len(projects) != 1 || projects[0].Name != "reporting" {
		t.Fatalf("expected project 'reporting' to be created, got %+v", projects)
	}
}

func TestAddTask_Validation(t *testing.T) {
	e, _ := newTestEngine()

	if _, err := e.AddTask(CreateTaskRequest{}); CodeOf(err) != CodeInvalidInput {
		t.Errorf("empty title: expected InvalidInput, got %v", err)
	}
	if _, err := e.AddTask(CreateTaskRequest{Title: "x", Priority: 4}); CodeOf(err) != CodeInvalidInput {
		t.Errorf("priority 4: expected InvalidInput, got %v", err)
	}
}

func TestUpdateTaskStatus_CompletedForcesFullProgress(t *testing.T) {
	e, _ := newTestEngine()
	task, _ := e.AddTask(CreateTaskRequest{Title: "write docs"})

	for _, startProgress := range []int{0, 37, 99} {
		if _, err := e.UpdateTaskProgress(task.ID, startProgress); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		updated, err := e.UpdateTaskStatus(task.ID, models.TaskCompleted)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if updated.Progress != 100 {
			t.Errorf("progress after completing from %d = %d, want 100", startProgress, updated.Progress)
		}
		// Reset for the next round. Any transition is allowed.
		if _, err := e.UpdateTaskStatus(task.ID, models.TaskTodo); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
}

func TestUpdateTaskStatus_LeavingCompletedKeepsProgress(t *testing.T) {
	e, _ := newTestEngine()
	task, _ := e.AddTask(CreateTaskRequest{Title: "review PRs"})

	e.UpdateTaskStatus(task.ID, models.TaskCompleted)
	updated, err := e.UpdateTaskStatus(task.ID, models.TaskInProgress)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Progress != 100 {
		t.Errorf("progress = %d, want 100 retained", updated.Progress)
	}
}

func TestUpdateTaskProgress_FullProgressDoesNotComplete(t *testing.T) {
	e, _ := newTestEngine()
	task, _ := e.AddTask(CreateTaskRequest{Title: "deploy"})

	updated, err := e.UpdateTaskProgress(task.ID, 100)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// The status change is explicit, never implied by progress.
	if updated.Status != models.TaskTodo {
		t.Errorf("status = %s, want todo", updated.Status)
	}
}

func TestUpdateTaskProgress_Bounds(t *testing.T) {
	e, _ := newTestEngine()
	task, _ := e.AddTask(CreateTaskRequest{Title: "triage"})

	for _, progress := range []int{-1, 101} {
		if _, err := e.UpdateTaskProgress(task.ID, progress); CodeOf(err) != CodeInvalidInput {
			t.Errorf("progress %d: expected InvalidInput, got %v", progress, err)
		}
	}
	if got := e.taskByID(task.ID).Progress; got != 0 {
		t.Errorf("progress mutated by failed update: %d", got)
	}
}

func TestTaskBoard_UnknownTask(t *testing.T) {
	e, _ := newTestEngine()

	if _, err := e.UpdateTaskStatus(42, models.TaskTodo); CodeOf(err) != CodeNotFound {
		t.Errorf("expected NotFound, got %v", err)
	}
	if _, err := e.UpdateTaskProgress(42, 10); CodeOf(err) != CodeNotFound {
		t.Errorf("expected NotFound, got %v", err)
	}
}

func TestUpdateTaskStatus_UnknownStatus(t *testing.T) {
	e, _ := newTestEngine()
	task, _ := e.AddTask(CreateTaskRequest{Title: "x"})

	if _, err := e.UpdateTaskStatus(task.ID, "archived"); CodeOf(err) != CodeInvalidInput {
		t.Errorf("expected InvalidInput, got %v", err)
	}
}

func TestListTasks_Filters(t *testing.T) {
	e, _ := newTestEngine()

	a, _ := e.AddTask(CreateTaskRequest{Title: "a", Priority: 3})
	e.AddTask(CreateTaskRequest{Title: "b", Priority: 1})
	e.AddTask(CreateTaskRequest{Title: "c", Priority: 3})
	e.UpdateTaskStatus(a.ID, models.TaskCompleted)

	if got := e.ListTasks("", -1); len(got) != 3 {
		t.Errorf("unfiltered: %d, want 3", len(got))
	}
	if got := e.ListTasks(models.TaskCompleted, -1); len(got) != 1 {
		t.Errorf("completed: %d, want 1", len(got))
	}
	if got := e.ListTasks("", 3); len(got) != 2 {
		t.Errorf("priority 3: %d, want 2", len(got))
	}
	if got := e.ListTasks(models.TaskTodo, 3); len(got) != 1 {
		t.Errorf("todo+priority 3: %d, want 1", len(got))
	}
}

func TestListTasks_ZeroPrioritySelectsUnprioritized(t *testing.T) {
	e, _ := newTestEngine()

	e.AddTask(CreateTaskRequest{Title: "no priority"})
	e.AddTask(CreateTaskRequest{Title: "high", Priority: 3})

	got := e.ListTasks("", 0)
	if len(got) != 1 || got[0].Title != "no priority" {
		t.Fatalf("priority 0 filter = %+v, want only the unprioritized task", got)
	}
	if got := e.ListTasks("", -1); len(got) != 2 {
		t.Errorf("unfiltered: %d, want 2", len(got))
	}
}
