package dto

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// eventDateLayouts are the formats accepted for event_date, most specific first.
// The dashboard's datetime-local inputs send minutes without a zone.
var eventDateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
}

// EventDate is a timestamp that tolerates the formats browsers submit
type EventDate struct {
	time.Time
}

// UnmarshalJSON implements json.Unmarshaler
func (d *EventDate) UnmarshalJSON(data []byte) error {
	var raw *string
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("event_date must be a string: %w", err)
	}
	if raw == nil || strings.TrimSpace(*raw) == "" {
		d.Time = time.Time{}
		return nil
	}

	value := strings.TrimSpace(*raw)
	for _, layout := range eventDateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			d.Time = t
			return nil
		}
	}
	return fmt.Errorf("event_date %q is not a recognised date", value)
}

// MarshalJSON implements json.Marshaler
func (d EventDate) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.Time.Format(time.RFC3339))
}

// EventRequest is used for both creating and updating events.
// created_by is ignored on update.
type EventRequest struct {
	Title       string    `json:"title" binding:"required" example:"Hostel Night"`
	Description *string   `json:"description" example:"Cultural evening"`
	EventDate   EventDate `json:"event_date" swaggertype:"string" example:"2025-03-01T18:00:00Z"`
	Location    *string   `json:"location" example:"Mess Hall"`
	CreatedBy   *int64    `json:"created_by" example:"1"`
}

// DeleteEventResponse confirms a deletion
type DeleteEventResponse struct {
	Message string `json:"message" example:"Event deleted successfully"`
	EventID int64  `json:"event_id" example:"3"`
}
