package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/khazna-app/backend/internal/application/usecase/summary"
	"github.com/khazna-app/backend/internal/integration/entrypoint/dto"
)

// SummaryController handles the narrative summary endpoint.
type SummaryController struct {
	generateUseCase *summary.GenerateSummaryUseCase
}

// NewSummaryController creates a new summary controller instance.
func NewSummaryController(generateUseCase *summary.GenerateSummaryUseCase) *SummaryController {
	return &SummaryController{
		generateUseCase: generateUseCase,
	}
}

// Get handles GET /summary requests. When no summarization service is
// configured the response carries available=false rather than an error.
func (c *SummaryController) Get(ctx *gin.Context) {
	output, err := c.generateUseCase.Execute(ctx.Request.Context())
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to generate summary",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.SummaryResponse{
		Available: output.Available,
		Summary:   output.Summary,
		Cached:    output.Cached,
	})
}
