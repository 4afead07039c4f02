package controllers

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/yigit/hostelhub/internal/app/models"
	"github.com/yigit/hostelhub/internal/app/models/dto"
)

type mockStudentService struct{ mock.Mock }

func (m *mockStudentService) Register(ctx context.Context, req *dto.CreateStudentRequest) (*models.Student, error) {
	args := m.Called(ctx, req)
	s, _ := args.Get(0).(*models.Student)
	return s, args.Error(1)
}

func (m *mockStudentService) ListStudents(ctx context.Context) ([]*models.StudentWithRoom, error) {
	args := m.Called(ctx)
	s, _ := args.Get(0).([]*models.StudentWithRoom)
	return s, args.Error(1)
}

func (m *mockStudentService) GetStudentRoom(ctx context.Context, studentID int64) (*models.Room, error) {
	args := m.Called(ctx, studentID)
	r, _ := args.Get(0).(*models.Room)
	return r, args.Error(1)
}

func (m *mockStudentService) GetProfile(ctx context.Context, studentID int64) (*models.Student, error) {
	args := m.Called(ctx, studentID)
	s, _ := args.Get(0).(*models.Student)
	return s, args.Error(1)
}

type mockRoomService struct{ mock.Mock }

func (m *mockRoomService) ListRooms(ctx context.Context) ([]*models.Room, error) {
	args := m.Called(ctx)
	r, _ := args.Get(0).([]*models.Room)
	return r, args.Error(1)
}

func (m *mockRoomService) CreateRoom(ctx context.Context, roomNumber string, capacity int) (*models.Room, error) {
	args := m.Called(ctx, roomNumber, capacity)
	r, _ := args.Get(0).(*models.Room)
	return r, args.Error(1)
}

func (m *mockRoomService) UpdateRoomStatus(ctx context.Context, roomID int64, status models.RoomStatus) (*models.Room, error) {
	args := m.Called(ctx, roomID, status)
	r, _ := args.Get(0).(*models.Room)
	return r, args.Error(1)
}

func (m *mockRoomService) AssignRoom(ctx context.Context, studentID, roomID int64) (*models.RoomAssignment, error) {
	args := m.Called(ctx, studentID, roomID)
	a, _ := args.Get(0).(*models.RoomAssignment)
	return a, args.Error(1)
}

type mockComplaintService struct{ mock.Mock }

func (m *mockComplaintService) CreateComplaint(ctx context.Context, studentID int64, text string) (*models.Complaint, error) {
	args := m.Called(ctx, studentID, text)
	c, _ := args.Get(0).(*models.Complaint)
	return c, args.Error(1)
}

func (m *mockComplaintService) ListStudentComplaints(ctx context.Context, studentID int64) ([]*models.Complaint, error) {
	args := m.Called(ctx, studentID)
	c, _ := args.Get(0).([]*models.Complaint)
	return c, args.Error(1)
}

func (m *mockComplaintService) ListComplaints(ctx context.Context) ([]*models.ComplaintDetail, error) {
	args := m.Called(ctx)
	c, _ := args.Get(0).([]*models.ComplaintDetail)
	return c, args.Error(1)
}

func (m *mockComplaintService) ResolveComplaint(ctx context.Context, complaintID int64, notes *string) error {
	return m.Called(ctx, complaintID, notes).Error(0)
}

type mockEventService struct{ mock.Mock }

func (m *mockEventService) ListEvents(ctx context.Context) ([]*models.Event, error) {
	args := m.Called(ctx)
	e, _ := args.Get(0).([]*models.Event)
	return e, args.Error(1)
}

func (m *mockEventService) ListUpcomingEvents(ctx context.Context) ([]*models.Event, error) {
	args := m.Called(ctx)
	e, _ := args.Get(0).([]*models.Event)
	return e, args.Error(1)
}

func (m *mockEventService) GetEvent(ctx context.Context, id int64) (*models.Event, error) {
	args := m.Called(ctx, id)
	e, _ := args.Get(0).(*models.Event)
	return e, args.Error(1)
}

func (m *mockEventService) CreateEvent(ctx context.Context, req *dto.EventRequest) (*models.Event, error) {
	args := m.Called(ctx, req)
	e, _ := args.Get(0).(*models.Event)
	return e, args.Error(1)
}

func (m *mockEventService) UpdateEvent(ctx context.Context, id int64, req *dto.EventRequest) (*models.Event, error) {
	args := m.Called(ctx, id, req)
	e, _ := args.Get(0).(*models.Event)
	return e, args.Error(1)
}

func (m *mockEventService) DeleteEvent(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type mockAuthService struct{ mock.Mock }

func (m *mockAuthService) Login(ctx context.Context, identifier, password string) (*dto.LoginResponse, error) {
	args := m.Called(ctx, identifier, password)
	r, _ := args.Get(0).(*dto.LoginResponse)
	return r, args.Error(1)
}

type mockStatsService struct{ mock.Mock }

func (m *mockStatsService) GetAdminStats(ctx context.Context) (*dto.AdminStatsResponse, error) {
	args := m.Called(ctx)
	r, _ := args.Get(0).(*dto.AdminStatsResponse)
	return r, args.Error(1)
}
