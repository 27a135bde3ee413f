// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/khazna-app/backend/internal/domain/entity"
)

// ProjectRepository defines the interface for project persistence operations.
type ProjectRepository interface {
	// Create creates a new project in the database.
	Create(ctx context.Context, project *entity.Project) error

	// FindByID retrieves a project by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Project, error)

	// FindAll retrieves every project.
	FindAll(ctx context.Context) ([]*entity.Project, error)

	// Delete removes a project. Transactions referencing it keep their
	// dangling ProjectID; readers degrade it to a display placeholder.
	Delete(ctx context.Context, id uuid.UUID) error
}
