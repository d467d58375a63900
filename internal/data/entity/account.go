package entity

type Account struct {
	Base
	Username   string  `db:"username"`
	Password   string  `db:"password"`
	Role       string  `db:"role"`
	Barangay   string  `db:"barangay"`
	Identifier *string `db:"identifier"`
}
