package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/yigit/hostelhub/internal/app/controllers"
	"github.com/yigit/hostelhub/internal/middleware"
)

// Controllers groups the HTTP handlers mounted by SetupRouter
type Controllers struct {
	Student   *controllers.StudentController
	Room      *controllers.RoomController
	Complaint *controllers.ComplaintController
	Event     *controllers.EventController
	Auth      *controllers.AuthController
	Admin     *controllers.AdminController
}

// SetupRouter configures all application routes.
// When requireAdmin is false the admin routes stay open, as the hostel desk clients expect.
func SetupRouter(
	router *gin.Engine,
	ctrl Controllers,
	authMiddleware *middleware.AuthMiddleware,
	requireAdmin bool,
) {
	router.GET("/", controllers.Root)
	router.GET("/health", controllers.Health)

	// --- Public routes ---
	router.POST("/login", ctrl.Auth.Login)
	router.GET("/me", authMiddleware.JWTAuth(), ctrl.Auth.Me)

	students := router.Group("/students")
	{
		students.POST("", ctrl.Student.CreateStudent)
		students.GET("/:id/complaints", ctrl.Student.GetStudentComplaints)
		students.GET("/:id/room", ctrl.Student.GetStudentRoom)
	}

	router.POST("/complaints", ctrl.Complaint.CreateComplaint)
	router.GET("/rooms", ctrl.Room.ListRooms)

	events := router.Group("/events")
	{
		events.GET("", ctrl.Event.ListEvents)
		events.GET("/upcoming", ctrl.Event.ListUpcomingEvents)
		events.GET("/:id", ctrl.Event.GetEvent)
	}

	// --- Admin routes ---
	admin := router.Group("")
	admin.Use(authMiddleware.AdminGuard(requireAdmin)...)
	{
		admin.GET("/students", ctrl.Student.ListStudents)

		admin.GET("/complaints", ctrl.Complaint.ListComplaints)
		admin.PUT("/complaints/:id/resolve", ctrl.Complaint.ResolveComplaint)

		admin.POST("/rooms", ctrl.Room.CreateRoom)
		admin.PUT("/rooms/:id/status", ctrl.Room.UpdateRoomStatus)
		admin.POST("/room-assignments", ctrl.Room.AssignRoom)

		admin.GET("/admin/stats", ctrl.Admin.GetStats)

		admin.POST("/events", ctrl.Event.CreateEvent)
		admin.PUT("/events/:id", ctrl.Event.UpdateEvent)
		admin.DELETE("/events/:id", ctrl.Event.DeleteEvent)
	}
}
