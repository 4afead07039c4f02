package models

// RoomStatus is the lifecycle state of a room
type RoomStatus string

const (
	RoomAvailable        RoomStatus = "Available"
	RoomOccupied         RoomStatus = "Occupied"
	RoomUnderMaintenance RoomStatus = "Under Maintenance"
)

// Valid reports whether s is one of the statuses accepted by the rooms CHECK constraint
func (s RoomStatus) Valid() bool {
	switch s {
	case RoomAvailable, RoomOccupied, RoomUnderMaintenance:
		return true
	}
	return false
}

// AssignmentStatus marks whether a student_rooms row is in effect
type AssignmentStatus string

const (
	AssignmentActive   AssignmentStatus = "Active"
	AssignmentInactive AssignmentStatus = "Inactive"
)

// ComplaintStatus moves one way, Pending to Resolved
type ComplaintStatus string

const (
	ComplaintPending  ComplaintStatus = "Pending"
	ComplaintResolved ComplaintStatus = "Resolved"
)
