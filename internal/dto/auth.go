package dto

// LoginRequest carries the login form fields posted to the token endpoint.
type LoginRequest struct {
	Username string `form:"username" json:"username" binding:"required"`
	Password string `form:"password" json:"password" binding:"required"`
}

// TokenResponse is the body of a successful api-token-auth call.
type TokenResponse struct {
	Token string `json:"token"`
}
