// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DisbursementMethod is how an aid payment reached the beneficiary.
type DisbursementMethod string

const (
	DisbursementMethodCash         DisbursementMethod = "نقدي"
	DisbursementMethodBankTransfer DisbursementMethod = "تحويل بنكي"
	DisbursementMethodInKind       DisbursementMethod = "عيني"
)

// DisbursementRecord is one beneficiary entry on a disbursement sheet.
type DisbursementRecord struct {
	ID               uuid.UUID
	SheetID          uuid.UUID
	Name             string
	NationalID       string
	DisbursementDate time.Time
	Method           DisbursementMethod
	Phone            string
	Amount           decimal.Decimal
	Currency         Currency
	Position         int // Insertion order within the sheet
	CreatedAt        time.Time
}

// DisbursementSheet is a named aid-disbursement roll. Records keep their
// insertion order.
type DisbursementSheet struct {
	ID        uuid.UUID
	Name      string
	CreatedAt time.Time
	Records   []DisbursementRecord
}

// NewDisbursementSheet creates a new, empty DisbursementSheet entity.
func NewDisbursementSheet(name string) *DisbursementSheet {
	return &DisbursementSheet{
		ID:        uuid.New(),
		Name:      name,
		CreatedAt: time.Now().UTC(),
	}
}

// NewDisbursementRecord creates a new DisbursementRecord entity for a sheet.
func NewDisbursementRecord(
	sheetID uuid.UUID,
	name, nationalID, phone string,
	disbursementDate time.Time,
	method DisbursementMethod,
	amount decimal.Decimal,
	currency Currency,
	position int,
) *DisbursementRecord {
	return &DisbursementRecord{
		ID:               uuid.New(),
		SheetID:          sheetID,
		Name:             name,
		NationalID:       nationalID,
		DisbursementDate: DateOnly(disbursementDate),
		Method:           method,
		Phone:            phone,
		Amount:           amount,
		Currency:         currency,
		Position:         position,
		CreatedAt:        time.Now().UTC(),
	}
}
