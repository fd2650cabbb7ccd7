package dto

// Request payload for login.
type LoginRequest struct {
	Email    string `json:"email"    example:"admin@example.org"`
	Password string `json:"password" example:"s3cret"`
}

type LoginAdmin struct {
	ID    string `json:"id"    example:"66c6248b98c56c39f018e7d2"`
	Email string `json:"email" example:"admin@example.org"`
}

// Response payload after a successful login.
type LoginResponse struct {
	Token string     `json:"token"`
	Admin LoginAdmin `json:"admin"`
}
