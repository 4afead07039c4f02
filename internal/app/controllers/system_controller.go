package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Root answers the liveness banner
// @Summary API banner
// @Tags system
// @Produce plain
// @Success 200 {string} string "Hostel Management System API"
// @Router / [get]
func Root(ctx *gin.Context) {
	ctx.String(http.StatusOK, "Hostel Management System API")
}

// Health reports that the process is serving requests
// @Summary Health check
// @Tags system
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func Health(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
}
