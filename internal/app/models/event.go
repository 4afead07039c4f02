package models

import "time"

// Event defines the event model based on the 'events' table
type Event struct {
	ID          int64     `json:"event_id" db:"event_id" example:"1"`
	Title       string    `json:"title" db:"title" example:"Hostel Night"`
	Description *string   `json:"description" db:"description"`
	EventDate   time.Time `json:"event_date" db:"event_date"`
	Location    *string   `json:"location" db:"location" example:"Mess Hall"`
	CreatedBy   *int64    `json:"created_by" db:"created_by"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
	// Only populated by list queries
	CreatedByName *string `json:"created_by_name,omitempty"`
}
