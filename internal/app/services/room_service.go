package services

import (
	"context"
	"strings"

	"github.com/yigit/hostelhub/internal/app/models"
	"github.com/yigit/hostelhub/internal/app/repositories"
	"github.com/yigit/hostelhub/internal/pkg/apperrors"
	"github.com/yigit/hostelhub/internal/pkg/validation"
)

// RoomService defines the interface for room management and allocation
type RoomService interface {
	ListRooms(ctx context.Context) ([]*models.Room, error)
	CreateRoom(ctx context.Context, roomNumber string, capacity int) (*models.Room, error)
	UpdateRoomStatus(ctx context.Context, roomID int64, status models.RoomStatus) (*models.Room, error)
	AssignRoom(ctx context.Context, studentID, roomID int64) (*models.RoomAssignment, error)
}

type roomServiceImpl struct {
	roomRepo repositories.IRoomRepository
}

// NewRoomService creates a new room service instance
func NewRoomService(roomRepo repositories.IRoomRepository) RoomService {
	return &roomServiceImpl{
		roomRepo: roomRepo,
	}
}

func (s *roomServiceImpl) ListRooms(ctx context.Context) ([]*models.Room, error) {
	return s.roomRepo.List(ctx)
}

// CreateRoom adds an Available room
func (s *roomServiceImpl) CreateRoom(ctx context.Context, roomNumber string, capacity int) (*models.Room, error) {
	roomNumber = strings.TrimSpace(roomNumber)
	if !validation.NewStringValidation(roomNumber).WithPattern(validation.CompiledPatterns.RoomNumber).Validate() {
		return nil, apperrors.NewValidationError("room_number must be 1 to 20 letters, digits or dashes")
	}
	if capacity <= 0 {
		return nil, apperrors.ErrInvalidCapacity
	}

	room := &models.Room{
		RoomNumber: roomNumber,
		Capacity:   capacity,
		Status:     models.RoomAvailable,
	}
	if err := s.roomRepo.Create(ctx, room); err != nil {
		return nil, err
	}

	return room, nil
}

// UpdateRoomStatus changes a room's status
func (s *roomServiceImpl) UpdateRoomStatus(ctx context.Context, roomID int64, status models.RoomStatus) (*models.Room, error) {
	if !status.Valid() {
		return nil, apperrors.ErrInvalidRoomStatus
	}
	return s.roomRepo.UpdateStatus(ctx, roomID, status)
}

// AssignRoom allocates a room to a student, replacing any previous allocation
func (s *roomServiceImpl) AssignRoom(ctx context.Context, studentID, roomID int64) (*models.RoomAssignment, error) {
	if studentID <= 0 || roomID <= 0 {
		return nil, apperrors.NewValidationError("student_id and room_id are required")
	}
	return s.roomRepo.AssignRoom(ctx, studentID, roomID)
}
