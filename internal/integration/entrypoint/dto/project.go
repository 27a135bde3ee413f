package dto

import (
	"github.com/khazna-app/backend/internal/domain/entity"
)

// CreateProjectRequest represents the request body for project creation.
type CreateProjectRequest struct {
	Name        string `json:"name" binding:"required,min=1,max=255"`
	Description string `json:"description,omitempty"`
	Budget      string `json:"budget,omitempty"`
}

// ProjectResponse represents a project in API responses.
type ProjectResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Budget      string `json:"budget"`
	CreatedAt   string `json:"created_at"`
}

// ProjectListResponse represents the project list response body.
type ProjectListResponse struct {
	Projects []ProjectResponse `json:"projects"`
}

// ProjectToResponse converts a project entity to its response shape.
func ProjectToResponse(project *entity.Project) ProjectResponse {
	return ProjectResponse{
		ID:          project.ID.String(),
		Name:        project.Name,
		Description: project.Description,
		Budget:      project.Budget.String(),
		CreatedAt:   project.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}
