package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/khazna-app/backend/internal/application/usecase/budget"
	"github.com/khazna-app/backend/internal/domain/entity"
	domainerror "github.com/khazna-app/backend/internal/domain/error"
	"github.com/khazna-app/backend/internal/integration/entrypoint/dto"
)

// BudgetController handles budget endpoints.
type BudgetController struct {
	listUseCase *budget.ListBudgetsUseCase
	saveUseCase *budget.SaveBudgetsUseCase
}

// NewBudgetController creates a new budget controller instance.
func NewBudgetController(
	listUseCase *budget.ListBudgetsUseCase,
	saveUseCase *budget.SaveBudgetsUseCase,
) *BudgetController {
	return &BudgetController{
		listUseCase: listUseCase,
		saveUseCase: saveUseCase,
	}
}

// List handles GET /budgets requests.
func (c *BudgetController) List(ctx *gin.Context) {
	output, err := c.listUseCase.Execute(ctx.Request.Context())
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to retrieve budgets",
		})
		return
	}
	ctx.JSON(http.StatusOK, dto.BudgetsToResponse(output.Budgets))
}

// Save handles PUT /budgets requests. The submitted items replace the full
// budget set.
func (c *BudgetController) Save(ctx *gin.Context) {
	var req dto.SaveBudgetsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	items := make([]budget.BudgetItem, len(req.Budgets))
	for i, item := range req.Budgets {
		amount, err := decimal.NewFromString(item.Amount)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid amount format",
				Code:  string(domainerror.ErrCodeInvalidBudgetAmount),
			})
			return
		}
		items[i] = budget.BudgetItem{
			Category: entity.Category(item.Category),
			Amount:   amount,
		}
	}

	output, err := c.saveUseCase.Execute(ctx.Request.Context(), budget.SaveBudgetsInput{Items: items})
	if err != nil {
		var budgetErr *domainerror.BudgetError
		if errors.As(err, &budgetErr) {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: budgetErr.Message,
				Code:  string(budgetErr.Code),
			})
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to save budgets",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.BudgetsToResponse(output.Budgets))
}
