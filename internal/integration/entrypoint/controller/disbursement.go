package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/khazna-app/backend/internal/application/usecase/disbursement"
	"github.com/khazna-app/backend/internal/domain/entity"
	domainerror "github.com/khazna-app/backend/internal/domain/error"
	"github.com/khazna-app/backend/internal/integration/entrypoint/dto"
)

// DisbursementController handles disbursement sheet endpoints.
type DisbursementController struct {
	listUseCase      *disbursement.ListSheetsUseCase
	createUseCase    *disbursement.CreateSheetUseCase
	addRecordUseCase *disbursement.AddRecordUseCase
	deleteUseCase    *disbursement.DeleteSheetUseCase
}

// NewDisbursementController creates a new disbursement controller instance.
func NewDisbursementController(
	listUseCase *disbursement.ListSheetsUseCase,
	createUseCase *disbursement.CreateSheetUseCase,
	addRecordUseCase *disbursement.AddRecordUseCase,
	deleteUseCase *disbursement.DeleteSheetUseCase,
) *DisbursementController {
	return &DisbursementController{
		listUseCase:      listUseCase,
		createUseCase:    createUseCase,
		addRecordUseCase: addRecordUseCase,
		deleteUseCase:    deleteUseCase,
	}
}

// List handles GET /disbursement-sheets requests.
func (c *DisbursementController) List(ctx *gin.Context) {
	output, err := c.listUseCase.Execute(ctx.Request.Context())
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to retrieve disbursement sheets",
		})
		return
	}

	response := dto.DisbursementSheetListResponse{
		Sheets: make([]dto.DisbursementSheetResponse, len(output.Sheets)),
	}
	for i, sheet := range output.Sheets {
		response.Sheets[i] = dto.SheetToResponse(sheet)
	}
	ctx.JSON(http.StatusOK, response)
}

// Create handles POST /disbursement-sheets requests.
func (c *DisbursementController) Create(ctx *gin.Context) {
	var req dto.CreateSheetRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), disbursement.CreateSheetInput{
		Name: req.Name,
	})
	if err != nil {
		c.handleDisbursementError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.SheetToResponse(output.Sheet))
}

// AddRecord handles POST /disbursement-sheets/:id/records requests.
func (c *DisbursementController) AddRecord(ctx *gin.Context) {
	sheetID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid sheet ID format",
		})
		return
	}

	var req dto.AddRecordRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	disbursementDate, err := time.Parse("2006-01-02", req.DisbursementDate)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid date format. Use YYYY-MM-DD",
		})
		return
	}

	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid amount format",
		})
		return
	}

	output, err := c.addRecordUseCase.Execute(ctx.Request.Context(), disbursement.AddRecordInput{
		SheetID:          sheetID,
		Name:             req.Name,
		NationalID:       req.NationalID,
		Phone:            req.Phone,
		DisbursementDate: disbursementDate,
		Method:           entity.DisbursementMethod(req.Method),
		Amount:           amount,
		Currency:         entity.Currency(req.Currency),
	})
	if err != nil {
		c.handleDisbursementError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.RecordToResponse(output.Record))
}

// Delete handles DELETE /disbursement-sheets/:id requests. Records are
// removed with the sheet.
func (c *DisbursementController) Delete(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid sheet ID format",
		})
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), disbursement.DeleteSheetInput{ID: id}); err != nil {
		c.handleDisbursementError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Disbursement sheet deleted"})
}

// handleDisbursementError maps domain errors to HTTP responses.
func (c *DisbursementController) handleDisbursementError(ctx *gin.Context, err error) {
	var dsbErr *domainerror.DisbursementError
	if errors.As(err, &dsbErr) {
		status := http.StatusBadRequest
		if dsbErr.Code == domainerror.ErrCodeSheetNotFound {
			status = http.StatusNotFound
		}
		ctx.JSON(status, dto.ErrorResponse{
			Error: dsbErr.Message,
			Code:  string(dsbErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "Internal server error",
	})
}
