package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/hostelhub/internal/app/services"
	"github.com/yigit/hostelhub/internal/middleware"
)

// AdminController serves the administrator dashboard
type AdminController struct {
	statsService services.StatsService
}

// NewAdminController creates a new AdminController
func NewAdminController(statsService services.StatsService) *AdminController {
	return &AdminController{
		statsService: statsService,
	}
}

// GetStats returns the dashboard counters
// @Summary Dashboard statistics
// @Description Counts non-admin students, rooms and complaints
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.AdminStatsResponse
// @Failure 500 {object} dto.ErrorResponse "Server error"
// @Router /admin/stats [get]
func (c *AdminController) GetStats(ctx *gin.Context) {
	stats, err := c.statsService.GetAdminStats(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, stats)
}
