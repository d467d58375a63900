package response

import "time"

type AccountResponse struct {
	Username   string    `json:"username"`
	Role       string    `json:"role"`
	Barangay   string    `json:"barangay"`
	Identifier *string   `json:"identifier,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

// RegisterResponse reports where a registration ended up: an active account
// (Status "active") or the approval queue (Status "pending_approval").
type RegisterResponse struct {
	Status     string           `json:"status"`
	Account    *AccountResponse `json:"account,omitempty"`
	MirrorFile string           `json:"mirror_file,omitempty"`
}

type LoginResponse struct {
	Username string `json:"username"`
	Role     string `json:"role"`
	Barangay string `json:"barangay"`
}
