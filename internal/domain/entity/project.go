// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DeletedProjectPlaceholder is shown in place of a project name when a
// transaction references a project that has since been deleted. Dangling
// references are expected after independent deletes and are never an error.
const DeletedProjectPlaceholder = "مشروع محذوف"

// Project groups transactions under a named initiative with its own budget.
type Project struct {
	ID          uuid.UUID
	Name        string
	Description string
	Budget      decimal.Decimal
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewProject creates a new Project entity.
func NewProject(name, description string, budget decimal.Decimal) *Project {
	now := time.Now().UTC()

	return &Project{
		ID:          uuid.New(),
		Name:        name,
		Description: description,
		Budget:      budget,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}
