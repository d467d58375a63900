package request

type RegisterRequest struct {
	Username   string `json:"username" validate:"required,max=50"`
	Password   string `json:"password" validate:"required"`
	Role       string `json:"role" validate:"required"`
	Barangay   string `json:"barangay,omitempty"`
	Identifier string `json:"identifier,omitempty"`
}

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}
