package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/khazna-app/backend/internal/domain/entity"
)

// CatchUpRunModel represents the catch_up_runs audit table in the database.
type CatchUpRunModel struct {
	ID                      uuid.UUID      `gorm:"type:uuid;primaryKey"`
	RunAt                   time.Time      `gorm:"not null;index"`
	GeneratedTransactionIDs pq.StringArray `gorm:"type:text[]"`
	ObligationsProcessed    int            `gorm:"not null"`
	ObligationsFailed       int            `gorm:"not null"`
}

// TableName returns the table name for the CatchUpRunModel.
func (CatchUpRunModel) TableName() string {
	return "catch_up_runs"
}

// ToEntity converts a CatchUpRunModel to a domain CatchUpRun entity.
func (m *CatchUpRunModel) ToEntity() *entity.CatchUpRun {
	return &entity.CatchUpRun{
		ID:                      m.ID,
		RunAt:                   m.RunAt,
		GeneratedTransactionIDs: []string(m.GeneratedTransactionIDs),
		ObligationsProcessed:    m.ObligationsProcessed,
		ObligationsFailed:       m.ObligationsFailed,
	}
}

// CatchUpRunFromEntity creates a CatchUpRunModel from a domain entity.
func CatchUpRunFromEntity(run *entity.CatchUpRun) *CatchUpRunModel {
	return &CatchUpRunModel{
		ID:                      run.ID,
		RunAt:                   run.RunAt,
		GeneratedTransactionIDs: pq.StringArray(run.GeneratedTransactionIDs),
		ObligationsProcessed:    run.ObligationsProcessed,
		ObligationsFailed:       run.ObligationsFailed,
	}
}
