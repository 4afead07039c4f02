package dto

// CreateStudentRequest is the registration payload
type CreateStudentRequest struct {
	Name     string  `json:"name" binding:"required" example:"Harpreet Kaur"`
	Email    string  `json:"email" binding:"required,email" example:"harpreet@gndec.ac.in"`
	Phone    *string `json:"phone" example:"9876543210"`
	Course   *string `json:"course" example:"B.Tech CSE"`
	Year     *int    `json:"year" example:"2"`
	Password string  `json:"password" binding:"required" example:"secret"`
}

// CreateStudentResponse echoes the identity of a registered student
type CreateStudentResponse struct {
	StudentID int64  `json:"student_id" example:"2"`
	Name      string `json:"name" example:"Harpreet Kaur"`
	Email     string `json:"email" example:"harpreet@gndec.ac.in"`
}

// NoRoomResponse is returned when a student holds no active assignment
type NoRoomResponse struct {
	RoomNumber *string `json:"room_number"`
}
