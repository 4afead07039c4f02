package dto

// CreateComplaintRequest is submitted by a student
type CreateComplaintRequest struct {
	StudentID     int64  `json:"student_id" binding:"required" example:"2"`
	ComplaintText string `json:"complaint_text" binding:"required" example:"Water leakage near window"`
}

// ResolveComplaintRequest optionally records how a complaint was handled
type ResolveComplaintRequest struct {
	ResolutionNotes *string `json:"resolution_notes" example:"Plumber visited"`
}
