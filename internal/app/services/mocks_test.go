package services

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/yigit/hostelhub/internal/app/models"
)

type mockStudentRepo struct{ mock.Mock }

func (m *mockStudentRepo) Create(ctx context.Context, student *models.Student) error {
	return m.Called(ctx, student).Error(0)
}

func (m *mockStudentRepo) EmailExists(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

func (m *mockStudentRepo) GetByID(ctx context.Context, id int64) (*models.Student, error) {
	args := m.Called(ctx, id)
	student, _ := args.Get(0).(*models.Student)
	return student, args.Error(1)
}

func (m *mockStudentRepo) GetByIdentifier(ctx context.Context, identifier string) (*models.Student, error) {
	args := m.Called(ctx, identifier)
	student, _ := args.Get(0).(*models.Student)
	return student, args.Error(1)
}

func (m *mockStudentRepo) ListNonAdminWithRoom(ctx context.Context) ([]*models.StudentWithRoom, error) {
	args := m.Called(ctx)
	students, _ := args.Get(0).([]*models.StudentWithRoom)
	return students, args.Error(1)
}

type mockRoomRepo struct{ mock.Mock }

func (m *mockRoomRepo) List(ctx context.Context) ([]*models.Room, error) {
	args := m.Called(ctx)
	rooms, _ := args.Get(0).([]*models.Room)
	return rooms, args.Error(1)
}

func (m *mockRoomRepo) GetByID(ctx context.Context, id int64) (*models.Room, error) {
	args := m.Called(ctx, id)
	room, _ := args.Get(0).(*models.Room)
	return room, args.Error(1)
}

func (m *mockRoomRepo) Create(ctx context.Context, room *models.Room) error {
	return m.Called(ctx, room).Error(0)
}

func (m *mockRoomRepo) UpdateStatus(ctx context.Context, id int64, status models.RoomStatus) (*models.Room, error) {
	args := m.Called(ctx, id, status)
	room, _ := args.Get(0).(*models.Room)
	return room, args.Error(1)
}

func (m *mockRoomRepo) GetActiveRoomForStudent(ctx context.Context, studentID int64) (*models.Room, error) {
	args := m.Called(ctx, studentID)
	room, _ := args.Get(0).(*models.Room)
	return room, args.Error(1)
}

func (m *mockRoomRepo) AssignRoom(ctx context.Context, studentID, roomID int64) (*models.RoomAssignment, error) {
	args := m.Called(ctx, studentID, roomID)
	a, _ := args.Get(0).(*models.RoomAssignment)
	return a, args.Error(1)
}

type mockComplaintRepo struct{ mock.Mock }

func (m *mockComplaintRepo) Create(ctx context.Context, studentID int64, text string) (*models.Complaint, error) {
	args := m.Called(ctx, studentID, text)
	c, _ := args.Get(0).(*models.Complaint)
	return c, args.Error(1)
}

func (m *mockComplaintRepo) ListByStudent(ctx context.Context, studentID int64) ([]*models.Complaint, error) {
	args := m.Called(ctx, studentID)
	c, _ := args.Get(0).([]*models.Complaint)
	return c, args.Error(1)
}

func (m *mockComplaintRepo) ListAll(ctx context.Context) ([]*models.ComplaintDetail, error) {
	args := m.Called(ctx)
	c, _ := args.Get(0).([]*models.ComplaintDetail)
	return c, args.Error(1)
}

func (m *mockComplaintRepo) Resolve(ctx context.Context, id int64, notes *string) error {
	return m.Called(ctx, id, notes).Error(0)
}

type mockEventRepo struct{ mock.Mock }

func (m *mockEventRepo) List(ctx context.Context) ([]*models.Event, error) {
	args := m.Called(ctx)
	e, _ := args.Get(0).([]*models.Event)
	return e, args.Error(1)
}

func (m *mockEventRepo) ListUpcoming(ctx context.Context, limit uint64) ([]*models.Event, error) {
	args := m.Called(ctx, limit)
	e, _ := args.Get(0).([]*models.Event)
	return e, args.Error(1)
}

func (m *mockEventRepo) GetByID(ctx context.Context, id int64) (*models.Event, error) {
	args := m.Called(ctx, id)
	e, _ := args.Get(0).(*models.Event)
	return e, args.Error(1)
}

func (m *mockEventRepo) Create(ctx context.Context, event *models.Event) error {
	return m.Called(ctx, event).Error(0)
}

func (m *mockEventRepo) Update(ctx context.Context, event *models.Event) error {
	return m.Called(ctx, event).Error(0)
}

func (m *mockEventRepo) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type mockStatsRepo struct{ mock.Mock }

func (m *mockStatsRepo) CountStudents(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockStatsRepo) CountRooms(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockStatsRepo) CountComplaints(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}
