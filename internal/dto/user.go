package dto

// LoginRequest is the JSON body for POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// RegisterRequest is the JSON body for POST /auth/register.
type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email,max=254"`
	Password string `json:"password" binding:"required,min=6"`
}

// GoogleSignInRequest is the JSON body for POST /auth/google.
type GoogleSignInRequest struct {
	IDToken string `json:"id_token" binding:"required"`
}

// UserResponse is returned when user info is needed (e.g. after login).
type UserResponse struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
}
