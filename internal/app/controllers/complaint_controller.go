package controllers

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/hostelhub/internal/app/models/dto"
	"github.com/yigit/hostelhub/internal/app/services"
	"github.com/yigit/hostelhub/internal/middleware"
)

// ComplaintController handles complaint endpoints
type ComplaintController struct {
	complaintService services.ComplaintService
}

// NewComplaintController creates a new ComplaintController
func NewComplaintController(complaintService services.ComplaintService) *ComplaintController {
	return &ComplaintController{
		complaintService: complaintService,
	}
}

// CreateComplaint files a complaint
// @Summary Submit a complaint
// @Description The complaint is tagged with the student's active room, if any
// @Tags complaints
// @Accept json
// @Produce json
// @Param request body dto.CreateComplaintRequest true "Complaint"
// @Success 201 {object} models.Complaint
// @Failure 400 {object} dto.ErrorResponse "Missing fields"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Failure 500 {object} dto.ErrorResponse "Server error"
// @Router /complaints [post]
func (c *ComplaintController) CreateComplaint(ctx *gin.Context) {
	var req dto.CreateComplaintRequest
	if !bindJSON(ctx, &req) {
		return
	}

	complaint, err := c.complaintService.CreateComplaint(ctx.Request.Context(), req.StudentID, req.ComplaintText)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, complaint)
}

// ListComplaints lists every complaint
// @Summary List complaints
// @Tags complaints
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.ComplaintDetail
// @Failure 500 {object} dto.ErrorResponse "Server error"
// @Router /complaints [get]
func (c *ComplaintController) ListComplaints(ctx *gin.Context) {
	complaints, err := c.complaintService.ListComplaints(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, complaints)
}

// ResolveComplaint marks a complaint resolved
// @Summary Resolve a complaint
// @Tags complaints
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Complaint ID" Format(int64) minimum(1)
// @Param request body dto.ResolveComplaintRequest false "Optional resolution notes"
// @Success 200 {object} dto.MessageResponse "Complaint resolved"
// @Failure 400 {object} dto.ErrorResponse "Invalid complaint ID"
// @Failure 404 {object} dto.ErrorResponse "Complaint not found"
// @Failure 500 {object} dto.ErrorResponse "Server error"
// @Router /complaints/{id}/resolve [put]
func (c *ComplaintController) ResolveComplaint(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", "complaint")
	if !ok {
		return
	}

	// The body is optional; an empty one means no notes
	var req dto.ResolveComplaintRequest
	if err := ctx.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		ctx.JSON(http.StatusBadRequest, dto.HandleValidationError(err))
		return
	}

	if err := c.complaintService.ResolveComplaint(ctx.Request.Context(), id, req.ResolutionNotes); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Complaint resolved"))
}
