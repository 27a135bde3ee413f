package dto

import (
	"github.com/khazna-app/backend/internal/domain/entity"
)

// CreateSheetRequest represents the request body for sheet creation.
type CreateSheetRequest struct {
	Name string `json:"name" binding:"required,min=1,max=255"`
}

// AddRecordRequest represents the request body for appending a beneficiary
// record to a sheet.
type AddRecordRequest struct {
	Name             string `json:"name" binding:"required,min=1,max=255"`
	NationalID       string `json:"national_id,omitempty" binding:"omitempty,max=20"`
	Phone            string `json:"phone,omitempty" binding:"omitempty,max=20"`
	DisbursementDate string `json:"disbursement_date" binding:"required"`
	Method           string `json:"method" binding:"required"`
	Amount           string `json:"amount" binding:"required"`
	Currency         string `json:"currency" binding:"required,oneof=EGP USD"`
}

// DisbursementRecordResponse represents a record in API responses.
type DisbursementRecordResponse struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	NationalID       string `json:"national_id,omitempty"`
	Phone            string `json:"phone,omitempty"`
	DisbursementDate string `json:"disbursement_date"`
	Method           string `json:"method"`
	Amount           string `json:"amount"`
	Currency         string `json:"currency"`
}

// DisbursementSheetResponse represents a sheet with its records.
type DisbursementSheetResponse struct {
	ID        string                       `json:"id"`
	Name      string                       `json:"name"`
	CreatedAt string                       `json:"created_at"`
	Records   []DisbursementRecordResponse `json:"records"`
}

// DisbursementSheetListResponse represents the sheet list response body.
type DisbursementSheetListResponse struct {
	Sheets []DisbursementSheetResponse `json:"sheets"`
}

// SheetToResponse converts a sheet entity to its response shape.
func SheetToResponse(sheet *entity.DisbursementSheet) DisbursementSheetResponse {
	response := DisbursementSheetResponse{
		ID:        sheet.ID.String(),
		Name:      sheet.Name,
		CreatedAt: sheet.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		Records:   make([]DisbursementRecordResponse, len(sheet.Records)),
	}
	for i := range sheet.Records {
		response.Records[i] = RecordToResponse(&sheet.Records[i])
	}
	return response
}

// RecordToResponse converts a disbursement record entity to its response
// shape.
func RecordToResponse(record *entity.DisbursementRecord) DisbursementRecordResponse {
	return DisbursementRecordResponse{
		ID:               record.ID.String(),
		Name:             record.Name,
		NationalID:       record.NationalID,
		Phone:            record.Phone,
		DisbursementDate: record.DisbursementDate.Format("2006-01-02"),
		Method:           string(record.Method),
		Amount:           record.Amount.String(),
		Currency:         string(record.Currency),
	}
}
