package engine

import (
	"time"

	"github.com/balkashynov/wrkday/internal/models"
)

// CreateTaskRequest holds the data needed to create a new task
type CreateTaskRequest struct {
	Title    string
	Project  string // project name, created on first use
	Tags     []string
	Priority int // 0=no priority, 1=low, 2=medium, 3=high
	DueDate  *time.Time
}

// AddTask creates a new task with tags, attaching it to its project
// (created on first mention).
func (e *Engine) AddTask(req CreateTaskRequest) (*models.Task, error) {
	if req.Title == "" {
		return nil, errInvalid("task title is required")
	}
	if req.Priority < 0 || req.Priority > 3 {
		return nil, errInvalid("priority must be between 0 and 3, got %d", req.Priority)
	}

	task := models.Task{
		ID:        nextID(e.state.Tasks, func(t models.Task) uint { return t.ID }),
		CreatedAt: e.clock.Now(),
		Title:     req.Title,
		Status:    models.TaskTodo,
		Priority:  req.Priority,
		Due:       req.DueDate,
		Tags:      tagList(req.Tags),
	}

	if req.Project != "" {
		projectID := e.findOrCreateProject(req.Project).ID
		task.ProjectID = &projectID
	}

	e.state.Tasks = append(e.state.Tasks, task)
	created := &e.state.Tasks[len(e.state.Tasks)-1]

	e.persist()
	return created, nil
}

// UpdateTaskStatus moves a task to a new status. Any transition is
// permitted, but completed forces progress to 100. Moving away from
// completed leaves progress where it was.
func (e *Engine) UpdateTaskStatus(taskID uint, status models.TaskStatus) (*models.Task, error) {
	switch status {
	case models.TaskTodo, models.TaskInProgress, models.TaskCompleted:
	default:
		return nil, errInvalid("unknown task status '%s'", status)
	}

	task := e.taskByID(taskID)
	if task == nil {
		return nil, errNotFound("task #%d not found", taskID)
	}

	task.Status = status
	if status == models.TaskCompleted {
		task.Progress = 100
	}

	e.persist()
	return task, nil
}

// UpdateTaskProgress sets a task's progress percentage. Progress alone
// never changes status: a task at 100 stays in-progress until the
// status is set to completed explicitly.
func (e *Engine) UpdateTaskProgress(taskID uint, progress int) (*models.Task, error) {
	if progress < 0 || progress > 100 {
		return nil, errInvalid("progress must be between 0 and 100, got %d", progress)
	}

	task := e.taskByID(taskID)
	if task == nil {
		return nil, errNotFound("task #%d not found", taskID)
	}

	task.Progress = progress
	e.persist()
	return task, nil
}

// ListTasks returns tasks, optionally filtered by status and/or
// priority. Pass "" and a negative priority for no filter; priority 0
// selects tasks with no priority set.
func (e *Engine) ListTasks(status models.TaskStatus, priority int) []models.Task {
	var out []models.Task
	for _, task := range e.state.Tasks {
		if status != "" && task.Status != status {
			continue
		}
		if priority >= 0 && task.Priority != priority {
			continue
		}
		out = append(out, task)
	}
	return out
}

func (e *Engine) taskByID(taskID uint) *models.Task {
	for i := range e.state.Tasks {
		if e.state.Tasks[i].ID == taskID {
			return &e.state.Tasks[i]
		}
	}
	return nil
}

func tagList(names []string) []models.Tag {
	var tags []models.Tag
	for _, name := range names {
		if name == "" {
			continue
		}
		tags = append(tags, models.Tag{Name: name})
	}
	return tags
}
