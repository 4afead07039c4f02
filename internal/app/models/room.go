package models

import "time"

// Room defines the room model based on the 'rooms' table
type Room struct {
	ID         int64      `json:"room_id" db:"room_id" example:"1"`
	RoomNumber string     `json:"room_number" db:"room_number" example:"70"`
	Capacity   int        `json:"capacity" db:"capacity" example:"2"`
	Status     RoomStatus `json:"status" db:"status" example:"Available"`
	CreatedAt  time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at" db:"updated_at"`
}

// IsFull reports whether occupants fill the room
func (r *Room) IsFull(occupants int64) bool {
	return occupants >= int64(r.Capacity)
}

// RoomAssignment is a row of 'student_rooms'. Rows are never deleted;
// superseded allocations are kept as Inactive history.
type RoomAssignment struct {
	ID             int64            `json:"id" db:"id" example:"1"`
	StudentID      int64            `json:"student_id" db:"student_id" example:"2"`
	RoomID         int64            `json:"room_id" db:"room_id" example:"1"`
	AllocationDate time.Time        `json:"allocation_date" db:"allocation_date"`
	Status         AssignmentStatus `json:"status" db:"status" example:"Active"`
}
