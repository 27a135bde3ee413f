package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/khazna-app/backend/internal/domain/entity"
)

// DisbursementSheetModel represents the disbursement_sheets table in the
// database.
type DisbursementSheetModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string    `gorm:"type:varchar(255);not null"`
	CreatedAt time.Time `gorm:"not null"`

	Records []DisbursementRecordModel `gorm:"foreignKey:SheetID;references:ID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for the DisbursementSheetModel.
func (DisbursementSheetModel) TableName() string {
	return "disbursement_sheets"
}

// DisbursementRecordModel represents the disbursement_records table in the
// database.
type DisbursementRecordModel struct {
	ID               uuid.UUID       `gorm:"type:uuid;primaryKey"`
	SheetID          uuid.UUID       `gorm:"type:uuid;not null;index"`
	Name             string          `gorm:"type:varchar(255);not null"`
	NationalID       string          `gorm:"type:varchar(20)"`
	DisbursementDate time.Time       `gorm:"type:date;not null"`
	Method           string          `gorm:"type:varchar(50);not null"`
	Phone            string          `gorm:"type:varchar(20)"`
	Amount           decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Currency         string          `gorm:"type:varchar(3);not null"`
	Position         int             `gorm:"not null"`
	CreatedAt        time.Time       `gorm:"not null"`
}

// TableName returns the table name for the DisbursementRecordModel.
func (DisbursementRecordModel) TableName() string {
	return "disbursement_records"
}

// ToEntity converts a DisbursementSheetModel with its records to a domain
// entity. Records come back in insertion order.
func (m *DisbursementSheetModel) ToEntity() *entity.DisbursementSheet {
	sheet := &entity.DisbursementSheet{
		ID:        m.ID,
		Name:      m.Name,
		CreatedAt: m.CreatedAt,
		Records:   make([]entity.DisbursementRecord, len(m.Records)),
	}
	for i, record := range m.Records {
		sheet.Records[i] = *record.ToEntity()
	}
	return sheet
}

// ToEntity converts a DisbursementRecordModel to a domain entity.
func (m *DisbursementRecordModel) ToEntity() *entity.DisbursementRecord {
	return &entity.DisbursementRecord{
		ID:               m.ID,
		SheetID:          m.SheetID,
		Name:             m.Name,
		NationalID:       m.NationalID,
		DisbursementDate: entity.DateOnly(m.DisbursementDate),
		Method:           entity.DisbursementMethod(m.Method),
		Phone:            m.Phone,
		Amount:           m.Amount,
		Currency:         entity.Currency(m.Currency),
		Position:         m.Position,
		CreatedAt:        m.CreatedAt,
	}
}

// DisbursementSheetFromEntity creates a DisbursementSheetModel from a domain
// entity, without its records.
func DisbursementSheetFromEntity(sheet *entity.DisbursementSheet) *DisbursementSheetModel {
	return &DisbursementSheetModel{
		ID:        sheet.ID,
		Name:      sheet.Name,
		CreatedAt: sheet.CreatedAt,
	}
}

// DisbursementRecordFromEntity creates a DisbursementRecordModel from a
// domain entity.
func DisbursementRecordFromEntity(record *entity.DisbursementRecord) *DisbursementRecordModel {
	return &DisbursementRecordModel{
		ID:               record.ID,
		SheetID:          record.SheetID,
		Name:             record.Name,
		NationalID:       record.NationalID,
		DisbursementDate: record.DisbursementDate,
		Method:           string(record.Method),
		Phone:            record.Phone,
		Amount:           record.Amount,
		Currency:         string(record.Currency),
		Position:         record.Position,
		CreatedAt:        record.CreatedAt,
	}
}
