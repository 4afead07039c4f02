package repositories

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/yigit/hostelhub/internal/app/models"
	"github.com/yigit/hostelhub/internal/db"
)

// newStatementBuilder returns a squirrel builder using PostgreSQL $n placeholders
func newStatementBuilder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
}

// IStudentRepository defines student persistence
type IStudentRepository interface {
	Create(ctx context.Context, student *models.Student) error
	EmailExists(ctx context.Context, email string) (bool, error)
	GetByID(ctx context.Context, id int64) (*models.Student, error)
	GetByIdentifier(ctx context.Context, identifier string) (*models.Student, error)
	ListNonAdminWithRoom(ctx context.Context) ([]*models.StudentWithRoom, error)
}

// IRoomRepository defines room persistence and the allocation workflow
type IRoomRepository interface {
	List(ctx context.Context) ([]*models.Room, error)
	GetByID(ctx context.Context, id int64) (*models.Room, error)
	Create(ctx context.Context, room *models.Room) error
	UpdateStatus(ctx context.Context, id int64, status models.RoomStatus) (*models.Room, error)
	GetActiveRoomForStudent(ctx context.Context, studentID int64) (*models.Room, error)
	AssignRoom(ctx context.Context, studentID, roomID int64) (*models.RoomAssignment, error)
}

// IComplaintRepository defines complaint persistence
type IComplaintRepository interface {
	Create(ctx context.Context, studentID int64, text string) (*models.Complaint, error)
	ListByStudent(ctx context.Context, studentID int64) ([]*models.Complaint, error)
	ListAll(ctx context.Context) ([]*models.ComplaintDetail, error)
	Resolve(ctx context.Context, id int64, notes *string) error
}

// IEventRepository defines event persistence
type IEventRepository interface {
	List(ctx context.Context) ([]*models.Event, error)
	ListUpcoming(ctx context.Context, limit uint64) ([]*models.Event, error)
	GetByID(ctx context.Context, id int64) (*models.Event, error)
	Create(ctx context.Context, event *models.Event) error
	Update(ctx context.Context, event *models.Event) error
	Delete(ctx context.Context, id int64) error
}

// IStatsRepository provides the admin dashboard counters
type IStatsRepository interface {
	CountStudents(ctx context.Context) (int64, error)
	CountRooms(ctx context.Context) (int64, error)
	CountComplaints(ctx context.Context) (int64, error)
}

// Repositories holds all the repository instances
type Repositories struct {
	StudentRepository   *StudentRepository
	RoomRepository      *RoomRepository
	ComplaintRepository *ComplaintRepository
	EventRepository     *EventRepository
	StatsRepository     *StatsRepository
}

// NewRepositories initializes all repositories on a shared pool
func NewRepositories(pool db.Pool) *Repositories {
	return &Repositories{
		StudentRepository:   NewStudentRepository(pool),
		RoomRepository:      NewRoomRepository(pool),
		ComplaintRepository: NewComplaintRepository(pool),
		EventRepository:     NewEventRepository(pool),
		StatsRepository:     NewStatsRepository(pool),
	}
}
