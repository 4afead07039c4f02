package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/yigit/hostelhub/internal/app/models"
	"github.com/yigit/hostelhub/internal/pkg/apperrors"
)

func TestCreateRoom(t *testing.T) {
	repo := &mockRoomRepo{}
	svc := NewRoomService(repo)
	ctx := context.Background()

	repo.On("Create", ctx, mock.MatchedBy(func(r *models.Room) bool {
		return r.RoomNumber == "75" && r.Capacity == 2 && r.Status == models.RoomAvailable
	})).Return(nil)

	room, err := svc.CreateRoom(ctx, " 75 ", 2)
	require.NoError(t, err)
	assert.Equal(t, "75", room.RoomNumber)

	_, err = svc.CreateRoom(ctx, "76", 0)
	assert.ErrorIs(t, err, apperrors.ErrInvalidCapacity)

	_, err = svc.CreateRoom(ctx, "room 7!", 2)
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)

	repo.AssertNumberOfCalls(t, "Create", 1)
}

func TestUpdateRoomStatus(t *testing.T) {
	repo := &mockRoomRepo{}
	svc := NewRoomService(repo)
	ctx := context.Background()

	repo.On("UpdateStatus", ctx, int64(1), models.RoomUnderMaintenance).
		Return(&models.Room{ID: 1, Status: models.RoomUnderMaintenance}, nil)

	room, err := svc.UpdateRoomStatus(ctx, 1, models.RoomUnderMaintenance)
	require.NoError(t, err)
	assert.Equal(t, models.RoomUnderMaintenance, room.Status)

	_, err = svc.UpdateRoomStatus(ctx, 1, models.RoomStatus("Closed"))
	assert.ErrorIs(t, err, apperrors.ErrInvalidRoomStatus)
	repo.AssertExpectations(t)
}

func TestAssignRoom(t *testing.T) {
	repo := &mockRoomRepo{}
	svc := NewRoomService(repo)
	ctx := context.Background()

	repo.On("AssignRoom", ctx, int64(2), int64(70)).Return(&models.RoomAssignment{ID: 1, StudentID: 2, RoomID: 70}, nil)
	repo.On("AssignRoom", ctx, int64(3), int64(70)).Return(nil, apperrors.ErrRoomFull)

	a, err := svc.AssignRoom(ctx, 2, 70)
	require.NoError(t, err)
	assert.Equal(t, int64(70), a.RoomID)

	_, err = svc.AssignRoom(ctx, 3, 70)
	assert.ErrorIs(t, err, apperrors.ErrRoomFull)

	_, err = svc.AssignRoom(ctx, 0, 70)
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
	repo.AssertExpectations(t)
}
