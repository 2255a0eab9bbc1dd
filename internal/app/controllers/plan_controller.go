package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/yigit/courseplan/internal/app/models/dto"
	"github.com/yigit/courseplan/internal/app/services"
	"github.com/yigit/courseplan/internal/middleware"
	"github.com/yigit/courseplan/internal/pkg/apperrors"
)

// PlanController handles course plan resolution requests
type PlanController struct {
	plannerService services.PlannerService
}

// NewPlanController creates a new PlanController
func NewPlanController(plannerService services.PlannerService) *PlanController {
	return &PlanController{
		plannerService: plannerService,
	}
}

// ResolvePlan resolves a completion order for the submitted courses
// @Summary Resolve a course plan
// @Description Computes an ordering of the submitted courses in which every course is preceded by its prerequisites, or reports that no such ordering exists
// @Tags plans
// @Accept json
// @Produce json
// @Param request body dto.ResolvePlanRequest true "Courses with prerequisite expressions"
// @Success 200 {object} dto.APIResponse{data=dto.ResolvePlanResponse} "Plan resolved (solvable=false when no ordering exists)"
// @Failure 400 {object} dto.ErrorResponse "Invalid course list or malformed prerequisite expression"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /plans [post]
func (c *PlanController) ResolvePlan(ctx *gin.Context) {
	var request dto.ResolvePlanRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		middleware.HandleAPIError(ctx, apperrors.NewBadRequestError("invalid course list: "+err.Error()))
		return
	}

	plan, err := c.plannerService.ResolvePlan(ctx, request.Courses)
	if err != nil {
		// No ordering existing is an expected outcome, not an error.
		if errors.Is(err, apperrors.ErrNoSolution) {
			ctx.JSON(http.StatusOK, dto.APIResponse{
				Data:      dto.ResolvePlanResponse{Solvable: false},
				Timestamp: time.Now(),
			})
			return
		}
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.ResolvePlanResponse{Solvable: true, Plan: plan},
		Timestamp: time.Now(),
	})
}
