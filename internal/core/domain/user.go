package domain

// User models a registered customer or operator.
type User struct {
	ID           int64
	FirstName    string
	LastName     string
	Username     string
	PasswordHash string
	Address      string
	Phone        string
	Email        string
	RoleID       int64
	Orders       []Order
}

// Credential is the slice of a user record the login flow needs.
// PasswordHash never leaves the service layer.
type Credential struct {
	UserID       int64
	Username     string
	PasswordHash string
	Role         Role
}

// Principal is the identity attached to a request after its token was verified.
type Principal struct {
	Subject string
	Role    Role
}
