package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/yigit/courseplan/internal/app/controllers"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	planController *controllers.PlanController,
) {
	// API version group
	v1 := router.Group("/api/v1")

	// Plan routes
	plans := v1.Group("/plans")
	{
		plans.POST("", planController.ResolvePlan)
	}
}
