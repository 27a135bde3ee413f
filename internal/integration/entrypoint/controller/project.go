package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/khazna-app/backend/internal/application/usecase/project"
	domainerror "github.com/khazna-app/backend/internal/domain/error"
	"github.com/khazna-app/backend/internal/integration/entrypoint/dto"
)

// ProjectController handles project endpoints.
type ProjectController struct {
	listUseCase   *project.ListProjectsUseCase
	createUseCase *project.CreateProjectUseCase
	deleteUseCase *project.DeleteProjectUseCase
}

// NewProjectController creates a new project controller instance.
func NewProjectController(
	listUseCase *project.ListProjectsUseCase,
	createUseCase *project.CreateProjectUseCase,
	deleteUseCase *project.DeleteProjectUseCase,
) *ProjectController {
	return &ProjectController{
		listUseCase:   listUseCase,
		createUseCase: createUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// List handles GET /projects requests.
func (c *ProjectController) List(ctx *gin.Context) {
	output, err := c.listUseCase.Execute(ctx.Request.Context())
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to retrieve projects",
		})
		return
	}

	response := dto.ProjectListResponse{
		Projects: make([]dto.ProjectResponse, len(output.Projects)),
	}
	for i, p := range output.Projects {
		response.Projects[i] = dto.ProjectToResponse(p)
	}
	ctx.JSON(http.StatusOK, response)
}

// Create handles POST /projects requests.
func (c *ProjectController) Create(ctx *gin.Context) {
	var req dto.CreateProjectRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	budget := decimal.Zero
	if req.Budget != "" {
		parsed, err := decimal.NewFromString(req.Budget)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid budget format",
			})
			return
		}
		budget = parsed
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), project.CreateProjectInput{
		Name:        req.Name,
		Description: req.Description,
		Budget:      budget,
	})
	if err != nil {
		if errors.Is(err, domainerror.ErrEmptyProjectName) {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Project name is required",
			})
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to create project",
		})
		return
	}

	ctx.JSON(http.StatusCreated, dto.ProjectToResponse(output.Project))
}

// Delete handles DELETE /projects/:id requests. Transactions that reference
// the project keep their link and render with a placeholder name.
func (c *ProjectController) Delete(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid project ID format",
		})
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), project.DeleteProjectInput{ID: id}); err != nil {
		if errors.Is(err, domainerror.ErrProjectNotFound) {
			ctx.JSON(http.StatusNotFound, dto.ErrorResponse{
				Error: "Project not found",
			})
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to delete project",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Project deleted"})
}
