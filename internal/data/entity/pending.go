package entity

type RegistrationStatus string

const (
	StatusPending  RegistrationStatus = "Pending"
	StatusApproved RegistrationStatus = "Approved"
	StatusRejected RegistrationStatus = "Rejected"
)

// PendingRegistration is an account request waiting for an admin decision.
// Rows are kept after approval/rejection as an audit trail; only the explicit
// delete operation removes them.
type PendingRegistration struct {
	Base
	Username   string             `db:"username"`
	Password   string             `db:"password"`
	Role       string             `db:"role"`
	Identifier string             `db:"identifier"`
	Status     RegistrationStatus `db:"status"`
}
