package models

import (
	"time"
)

// Student defines the student model based on the 'students' table.
// Administrators are students with IsAdmin set.
type Student struct {
	ID        int64     `json:"student_id" db:"student_id" example:"1"`
	Name      string    `json:"name" db:"name" example:"Harpreet Kaur"`
	Email     string    `json:"email" db:"email" example:"harpreet@gndec.ac.in"`
	Phone     *string   `json:"phone" db:"phone" example:"9876543210"`
	Course    *string   `json:"course" db:"course" example:"B.Tech CSE"`
	Year      *int      `json:"year" db:"year" example:"2"`
	Password  string    `json:"-" db:"password"`
	IsAdmin   bool      `json:"is_admin" db:"is_admin" example:"false"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// StudentWithRoom is a directory row: a student and the room of its active assignment, if any
type StudentWithRoom struct {
	Student
	RoomID     *int64  `json:"room_id"`
	RoomNumber *string `json:"room_number"`
}
