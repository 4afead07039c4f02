package dto

// LoginRequest accepts an email address or phone number as userName
type LoginRequest struct {
	UserName string `json:"userName" binding:"required" example:"admin@gndec.ac.in"`
	Password string `json:"password" binding:"required" example:"123"`
}

// LoginResponse is consumed by the dashboard and stored in session storage
type LoginResponse struct {
	Message   string `json:"message" example:"Login successful"`
	UserID    int64  `json:"userId" example:"1"`
	UserName  string `json:"userName" example:"Admin User"`
	IsAdmin   bool   `json:"isAdmin" example:"true"`
	Token     string `json:"token"`
	TokenType string `json:"tokenType" example:"Bearer"`
	ExpiresIn int64  `json:"expiresIn" example:"43200"`
}
