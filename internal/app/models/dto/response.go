package dto

// MessageResponse is the plain acknowledgement body used by mutation endpoints
type MessageResponse struct {
	Message string `json:"message" example:"Complaint resolved"`
}

// NewMessageResponse creates a MessageResponse
func NewMessageResponse(message string) MessageResponse {
	return MessageResponse{Message: message}
}
