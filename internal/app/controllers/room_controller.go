package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/hostelhub/internal/app/models/dto"
	"github.com/yigit/hostelhub/internal/app/services"
	"github.com/yigit/hostelhub/internal/middleware"
)

// RoomController handles rooms and room assignments
type RoomController struct {
	roomService services.RoomService
}

// NewRoomController creates a new RoomController
func NewRoomController(roomService services.RoomService) *RoomController {
	return &RoomController{
		roomService: roomService,
	}
}

// ListRooms lists every room
// @Summary List rooms
// @Tags rooms
// @Produce json
// @Success 200 {array} models.Room
// @Failure 500 {object} dto.ErrorResponse "Server error"
// @Router /rooms [get]
func (c *RoomController) ListRooms(ctx *gin.Context) {
	rooms, err := c.roomService.ListRooms(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, rooms)
}

// CreateRoom adds a room
// @Summary Create a room
// @Tags rooms
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateRoomRequest true "Room information"
// @Success 201 {object} models.Room
// @Failure 400 {object} dto.ErrorResponse "Invalid data or room number already exists"
// @Failure 500 {object} dto.ErrorResponse "Server error"
// @Router /rooms [post]
func (c *RoomController) CreateRoom(ctx *gin.Context) {
	var req dto.CreateRoomRequest
	if !bindJSON(ctx, &req) {
		return
	}

	room, err := c.roomService.CreateRoom(ctx.Request.Context(), req.RoomNumber, req.Capacity)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, room)
}

// UpdateRoomStatus changes a room's status
// @Summary Update room status
// @Tags rooms
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Room ID" Format(int64) minimum(1)
// @Param request body dto.UpdateRoomStatusRequest true "New status"
// @Success 200 {object} models.Room
// @Failure 400 {object} dto.ErrorResponse "Invalid status"
// @Failure 404 {object} dto.ErrorResponse "Room not found"
// @Failure 500 {object} dto.ErrorResponse "Server error"
// @Router /rooms/{id}/status [put]
func (c *RoomController) UpdateRoomStatus(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", "room")
	if !ok {
		return
	}

	var req dto.UpdateRoomStatusRequest
	if !bindJSON(ctx, &req) {
		return
	}

	room, err := c.roomService.UpdateRoomStatus(ctx.Request.Context(), id, req.Status)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, room)
}

// AssignRoom allocates a room to a student
// @Summary Assign a room
// @Description Retires the student's current assignment and creates a new active one.
// @Description The room becomes Occupied when it reaches capacity.
// @Tags rooms
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.AssignRoomRequest true "Assignment"
// @Success 201 {object} models.RoomAssignment
// @Failure 400 {object} dto.ErrorResponse "Room is at full capacity"
// @Failure 404 {object} dto.ErrorResponse "Room not found"
// @Failure 500 {object} dto.ErrorResponse "Server error"
// @Router /room-assignments [post]
func (c *RoomController) AssignRoom(ctx *gin.Context) {
	var req dto.AssignRoomRequest
	if !bindJSON(ctx, &req) {
		return
	}

	assignment, err := c.roomService.AssignRoom(ctx.Request.Context(), req.StudentID, req.RoomID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, assignment)
}
