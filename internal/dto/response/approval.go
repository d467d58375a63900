package response

import "time"

type PendingResponse struct {
	Username    string    `json:"username"`
	Role        string    `json:"role"`
	Identifier  string    `json:"identifier"`
	Status      string    `json:"status"`
	SubmittedAt time.Time `json:"submitted_at"`
}

type ImportResponse struct {
	Imported int `json:"imported"`
	Skipped  int `json:"skipped"`
}
