package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/hostelhub/internal/app/models/dto"
	"github.com/yigit/hostelhub/internal/app/services"
	"github.com/yigit/hostelhub/internal/middleware"
)

// StudentController handles student registration and directory endpoints
type StudentController struct {
	studentService   services.StudentService
	complaintService services.ComplaintService
}

// NewStudentController creates a new StudentController
func NewStudentController(studentService services.StudentService, complaintService services.ComplaintService) *StudentController {
	return &StudentController{
		studentService:   studentService,
		complaintService: complaintService,
	}
}

// CreateStudent registers a student
// @Summary Register a student
// @Description Creates a student account. The password is stored as a bcrypt hash.
// @Tags students
// @Accept json
// @Produce json
// @Param request body dto.CreateStudentRequest true "Student information"
// @Success 201 {object} dto.CreateStudentResponse "Student registered"
// @Failure 400 {object} dto.ErrorResponse "Missing fields or email already exists"
// @Failure 500 {object} dto.ErrorResponse "Server error"
// @Router /students [post]
func (c *StudentController) CreateStudent(ctx *gin.Context) {
	var req dto.CreateStudentRequest
	if !bindJSON(ctx, &req) {
		return
	}

	student, err := c.studentService.Register(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.CreateStudentResponse{
		StudentID: student.ID,
		Name:      student.Name,
		Email:     student.Email,
	})
}

// ListStudents lists the student directory
// @Summary List students
// @Description Lists non-admin students ordered by name, with the room of their active assignment
// @Tags students
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.StudentWithRoom
// @Failure 500 {object} dto.ErrorResponse "Server error"
// @Router /students [get]
func (c *StudentController) ListStudents(ctx *gin.Context) {
	students, err := c.studentService.ListStudents(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, students)
}

// GetStudentComplaints lists a student's complaints
// @Summary List a student's complaints
// @Tags students
// @Produce json
// @Param id path int true "Student ID" Format(int64) minimum(1)
// @Success 200 {array} models.Complaint
// @Failure 400 {object} dto.ErrorResponse "Invalid student ID"
// @Failure 500 {object} dto.ErrorResponse "Server error"
// @Router /students/{id}/complaints [get]
func (c *StudentController) GetStudentComplaints(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", "student")
	if !ok {
		return
	}

	complaints, err := c.complaintService.ListStudentComplaints(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, complaints)
}

// GetStudentRoom returns the student's current room
// @Summary Get a student's room
// @Description Returns the room of the active assignment, or {"room_number": null} when there is none
// @Tags students
// @Produce json
// @Param id path int true "Student ID" Format(int64) minimum(1)
// @Success 200 {object} models.Room
// @Failure 400 {object} dto.ErrorResponse "Invalid student ID"
// @Failure 500 {object} dto.ErrorResponse "Server error"
// @Router /students/{id}/room [get]
func (c *StudentController) GetStudentRoom(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", "student")
	if !ok {
		return
	}

	room, err := c.studentService.GetStudentRoom(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	if room == nil {
		ctx.JSON(http.StatusOK, dto.NoRoomResponse{})
		return
	}

	ctx.JSON(http.StatusOK, room)
}
