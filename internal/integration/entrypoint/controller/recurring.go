package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/khazna-app/backend/internal/application/usecase/recurring"
	"github.com/khazna-app/backend/internal/domain/entity"
	domainerror "github.com/khazna-app/backend/internal/domain/error"
	"github.com/khazna-app/backend/internal/integration/entrypoint/dto"
)

// RecurringController handles recurring expense endpoints.
type RecurringController struct {
	listUseCase    *recurring.ListRecurringExpensesUseCase
	createUseCase  *recurring.CreateRecurringExpenseUseCase
	updateUseCase  *recurring.UpdateRecurringExpenseUseCase
	deleteUseCase  *recurring.DeleteRecurringExpenseUseCase
	catchUpUseCase *recurring.RunCatchUpUseCase
}

// NewRecurringController creates a new recurring expense controller instance.
func NewRecurringController(
	listUseCase *recurring.ListRecurringExpensesUseCase,
	createUseCase *recurring.CreateRecurringExpenseUseCase,
	updateUseCase *recurring.UpdateRecurringExpenseUseCase,
	deleteUseCase *recurring.DeleteRecurringExpenseUseCase,
	catchUpUseCase *recurring.RunCatchUpUseCase,
) *RecurringController {
	return &RecurringController{
		listUseCase:    listUseCase,
		createUseCase:  createUseCase,
		updateUseCase:  updateUseCase,
		deleteUseCase:  deleteUseCase,
		catchUpUseCase: catchUpUseCase,
	}
}

// List handles GET /recurring-expenses requests.
func (c *RecurringController) List(ctx *gin.Context) {
	output, err := c.listUseCase.Execute(ctx.Request.Context())
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to retrieve recurring expenses",
		})
		return
	}

	response := dto.RecurringExpenseListResponse{
		RecurringExpenses: make([]dto.RecurringExpenseResponse, len(output.RecurringExpenses)),
	}
	for i, expense := range output.RecurringExpenses {
		response.RecurringExpenses[i] = dto.RecurringExpenseToResponse(expense)
	}
	ctx.JSON(http.StatusOK, response)
}

// Create handles POST /recurring-expenses requests.
func (c *RecurringController) Create(ctx *gin.Context) {
	input, ok := c.bindRecurringInput(ctx)
	if !ok {
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), recurring.CreateRecurringExpenseInput{
		Description: input.Description,
		Amount:      input.Amount,
		Currency:    input.Currency,
		Category:    input.Category,
		Frequency:   input.Frequency,
		StartDate:   input.StartDate,
	})
	if err != nil {
		c.handleRecurringError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.RecurringExpenseToResponse(output.RecurringExpense))
}

// Update handles PUT /recurring-expenses/:id requests.
func (c *RecurringController) Update(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid recurring expense ID format",
		})
		return
	}

	input, ok := c.bindRecurringInput(ctx)
	if !ok {
		return
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), recurring.UpdateRecurringExpenseInput{
		ID:          id,
		Description: input.Description,
		Amount:      input.Amount,
		Currency:    input.Currency,
		Category:    input.Category,
		Frequency:   input.Frequency,
		StartDate:   input.StartDate,
	})
	if err != nil {
		c.handleRecurringError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.RecurringExpenseToResponse(output.RecurringExpense))
}

// Delete handles DELETE /recurring-expenses/:id requests.
func (c *RecurringController) Delete(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid recurring expense ID format",
		})
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), recurring.DeleteRecurringExpenseInput{ID: id}); err != nil {
		c.handleRecurringError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Recurring expense deleted"})
}

// RunCatchUp handles POST /recurring-expenses/catch-up requests. The same
// run executes at startup; this endpoint lets a client trigger it on demand.
func (c *RecurringController) RunCatchUp(ctx *gin.Context) {
	output, err := c.catchUpUseCase.Execute(ctx.Request.Context(), recurring.RunCatchUpInput{
		Today: time.Now().UTC(),
	})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Catch-up run failed",
			Code:  string(domainerror.ErrCodeCatchUpFailed),
		})
		return
	}

	generated := make([]dto.TransactionResponse, len(output.Generated))
	for i, tx := range output.Generated {
		generated[i] = dto.TransactionToResponse(tx, "")
	}
	upcoming := make([]dto.RecurringExpenseResponse, len(output.Upcoming))
	for i, expense := range output.Upcoming {
		upcoming[i] = dto.RecurringExpenseToResponse(expense)
	}

	ctx.JSON(http.StatusOK, dto.CatchUpResponse{
		Generated: generated,
		Upcoming:  upcoming,
		Failed:    output.Failed,
	})
}

// recurringInput holds the parsed fields shared by create and update.
type recurringInput struct {
	Description string
	Amount      decimal.Decimal
	Currency    entity.Currency
	Category    entity.Category
	Frequency   entity.Frequency
	StartDate   time.Time
}

// bindRecurringInput binds and parses the shared request body, writing the
// error response itself on failure.
func (c *RecurringController) bindRecurringInput(ctx *gin.Context) (recurringInput, bool) {
	var req dto.RecurringExpenseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return recurringInput{}, false
	}

	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid amount format",
			Code:  string(domainerror.ErrCodeInvalidTransactionAmount),
		})
		return recurringInput{}, false
	}

	startDate, err := time.Parse("2006-01-02", req.StartDate)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid date format. Use YYYY-MM-DD",
			Code:  string(domainerror.ErrCodeInvalidStartDate),
		})
		return recurringInput{}, false
	}

	return recurringInput{
		Description: req.Description,
		Amount:      amount,
		Currency:    entity.Currency(req.Currency),
		Category:    entity.Category(req.Category),
		Frequency:   entity.Frequency(req.Frequency),
		StartDate:   startDate,
	}, true
}

// handleRecurringError maps domain errors to HTTP responses.
func (c *RecurringController) handleRecurringError(ctx *gin.Context, err error) {
	var recErr *domainerror.RecurringError
	if errors.As(err, &recErr) {
		status := http.StatusBadRequest
		if recErr.Code == domainerror.ErrCodeRecurringExpenseNotFound {
			status = http.StatusNotFound
		}
		ctx.JSON(status, dto.ErrorResponse{
			Error: recErr.Message,
			Code:  string(recErr.Code),
		})
		return
	}

	var txErr *domainerror.TransactionError
	if errors.As(err, &txErr) {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: txErr.Message,
			Code:  string(txErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "Internal server error",
	})
}
