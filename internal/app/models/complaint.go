package models

import "time"

// Complaint defines the complaint model based on the 'complaints' table.
// RoomID snapshots the student's active room at submission time.
type Complaint struct {
	ID              int64           `json:"complaint_id" db:"complaint_id" example:"1"`
	StudentID       int64           `json:"student_id" db:"student_id" example:"2"`
	RoomID          *int64          `json:"room_id" db:"room_id" example:"1"`
	Text            string          `json:"complaint_text" db:"complaint_text" example:"Fan not working"`
	DateSubmitted   time.Time       `json:"date_submitted" db:"date_submitted"`
	Status          ComplaintStatus `json:"status" db:"status" example:"Pending"`
	ResolutionNotes *string         `json:"resolution_notes" db:"resolution_notes"`
	CreatedAt       time.Time       `json:"created_at" db:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at" db:"updated_at"`
}

// ComplaintDetail is the administrative view of a complaint
type ComplaintDetail struct {
	Complaint
	StudentName string  `json:"student_name"`
	RoomNumber  *string `json:"room_number"`
}
