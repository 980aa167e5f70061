package engine

import (
	"github.com/balkashynov/wrkday/internal/models"
)

// ProgressOf averages the progress of the project's tasks. A project
// with no tasks reports 0.
func (e *Engine) ProgressOf(projectID uint) int {
	sum, count := 0, 0
	for _, task := range e.state.Tasks {
		if task.ProjectID != nil && *task.ProjectID == projectID {
			sum += task.Progress
			count++
		}
	}
	if count == 0 {
		return 0
	}
	return sum / count
}

// TaskCounts returns (completed, total) task counts for a project.
func (e *Engine) TaskCounts(projectID uint) (completed, total int) {
	for _, task := range e.state.Tasks {
		if task.ProjectID == nil || *task.ProjectID != projectID {
			continue
		}
		total++
		if task.Status == models.TaskCompleted {
			completed++
		}
	}
	return completed, total
}

// ListProjects returns projects with their derived rollups filled in,
// optionally filtered by status. Pass "" for no filter.
func (e *Engine) ListProjects(status models.ProjectStatus) []models.Project {
	var out []models.Project
	for _, project := range e.state.Projects {
		if status != "" && project.Status != status {
			continue
		}
		project.Progress = e.ProgressOf(project.ID)
		project.CompletedTaskCount, project.TaskCount = e.TaskCounts(project.ID)
		out = append(out, project)
	}
	return out
}

// ProjectByID returns a copy of the project with rollups filled in.
func (e *Engine) ProjectByID(projectID uint) (models.Project, error) {
	for _, project := range e.state.Projects {
		if project.ID != projectID {
			continue
		}
		project.Progress = e.ProgressOf(project.ID)
		project.CompletedTaskCount, project.TaskCount = e.TaskCounts(project.ID)
		return project, nil
	}
	return models.Project{}, errNotFound("project #%d not found", projectID)
}

// findOrCreateProject resolves a project by name, creating an active
// one on first mention.
func (e *Engine) findOrCreateProject(name string) *models.Project {
	for i := range e.state.Projects {
		if e.state.Projects[i].Name == name {
			return &e.state.Projects[i]
		}
	}
	e.state.Projects = append(e.state.Projects, models.Project{
		ID:        nextID(e.state.Projects, func(p models.Project) uint { return p.ID }),
		CreatedAt: e.clock.Now(),
		Name:      name,
		Status:    models.ProjectActive,
	})
	return &e.state.Projects[len(e.state.Projects)-1]
}
