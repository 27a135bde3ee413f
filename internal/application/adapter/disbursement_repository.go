// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/khazna-app/backend/internal/domain/entity"
)

// DisbursementRepository defines the interface for disbursement sheet
// persistence operations. Records within a sheet keep their insertion order.
type DisbursementRepository interface {
	// CreateSheet creates a new, empty disbursement sheet.
	CreateSheet(ctx context.Context, sheet *entity.DisbursementSheet) error

	// FindSheetByID retrieves a sheet with its records, insertion-ordered.
	FindSheetByID(ctx context.Context, id uuid.UUID) (*entity.DisbursementSheet, error)

	// FindAllSheets retrieves every sheet with its records.
	FindAllSheets(ctx context.Context) ([]*entity.DisbursementSheet, error)

	// AddRecord appends a beneficiary record to a sheet.
	AddRecord(ctx context.Context, record *entity.DisbursementRecord) error

	// DeleteSheet removes a sheet and its records.
	DeleteSheet(ctx context.Context, id uuid.UUID) error
}
