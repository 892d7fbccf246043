package model

// Usuario is an entry in the fixed dashboard user list. The list is seeded
// at startup and never grows: this is a login stub, not a security boundary.
type Usuario struct {
	ID           int64
	Email        string
	Nombre       string
	PasswordHash string
}
