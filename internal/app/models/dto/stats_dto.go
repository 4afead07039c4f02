package dto

// AdminStatsResponse holds the dashboard counters
type AdminStatsResponse struct {
	Students   int64 `json:"students" example:"120"`
	Rooms      int64 `json:"rooms" example:"5"`
	Complaints int64 `json:"complaints" example:"14"`
}
