package dto

import "github.com/yigit/hostelhub/internal/app/models"

// AssignRoomRequest allocates a student to a room
type AssignRoomRequest struct {
	StudentID int64 `json:"student_id" binding:"required" example:"2"`
	RoomID    int64 `json:"room_id" binding:"required" example:"1"`
}

// CreateRoomRequest adds a room to the hostel
type CreateRoomRequest struct {
	RoomNumber string `json:"room_number" binding:"required" example:"75"`
	Capacity   int    `json:"capacity" binding:"required,min=1" example:"2"`
}

// UpdateRoomStatusRequest changes a room's status, e.g. to take it out for maintenance
type UpdateRoomStatusRequest struct {
	Status models.RoomStatus `json:"status" binding:"required" example:"Under Maintenance"`
}
