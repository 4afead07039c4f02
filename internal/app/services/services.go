package services

import (
	"github.com/yigit/hostelhub/internal/app/repositories"
	"github.com/yigit/hostelhub/internal/pkg/auth"
)

// Services groups the application services
type Services struct {
	StudentService   StudentService
	RoomService      RoomService
	ComplaintService ComplaintService
	EventService     EventService
	AuthService      AuthService
	StatsService     StatsService
}

// NewServices wires every service on top of the repositories
func NewServices(repos *repositories.Repositories, jwtService *auth.JWTService) *Services {
	return &Services{
		StudentService:   NewStudentService(repos.StudentRepository, repos.RoomRepository),
		RoomService:      NewRoomService(repos.RoomRepository),
		ComplaintService: NewComplaintService(repos.ComplaintRepository),
		EventService:     NewEventService(repos.EventRepository),
		AuthService:      NewAuthService(repos.StudentRepository, jwtService),
		StatsService:     NewStatsService(repos.StatsRepository),
	}
}
