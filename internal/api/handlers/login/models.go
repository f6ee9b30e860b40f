package login

// LoginRequest HTTP request model
type LoginRequest struct {
	Name string `json:"name"`
}

// LoginResponse HTTP response model
type LoginResponse struct {
	Token string `json:"token"`
	User  string `json:"user"`
}
