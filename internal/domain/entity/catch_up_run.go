// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// CatchUpRun is an audit record of one recurring-expense catch-up pass. One
// row is written per session start so generated transactions stay traceable
// to the run that produced them.
type CatchUpRun struct {
	ID                      uuid.UUID
	RunAt                   time.Time
	GeneratedTransactionIDs []string
	ObligationsProcessed    int
	ObligationsFailed       int
}

// NewCatchUpRun creates a new CatchUpRun entity.
func NewCatchUpRun(runAt time.Time, generatedIDs []string, processed, failed int) *CatchUpRun {
	return &CatchUpRun{
		ID:                      uuid.New(),
		RunAt:                   runAt,
		GeneratedTransactionIDs: generatedIDs,
		ObligationsProcessed:    processed,
		ObligationsFailed:       failed,
	}
}
