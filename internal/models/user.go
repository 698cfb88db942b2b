package models

// User roles
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// User is an admin account. Users are provisioned out of band; there is no
// registration endpoint. PasswordHash is a bcrypt hash stored under the
// "password" key in users.json.
type User struct {
	ID           string `json:"id"`
	Email        string `json:"email"`
	Name         string `json:"name"`
	PasswordHash string `json:"password"`
	Role         string `json:"role"`
}

// AuthUser is the caller identity exposed to handlers and API responses.
// It never carries the password hash.
type AuthUser struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}

// Safe returns the response-safe view of the user.
func (u User) Safe() AuthUser {
	return AuthUser{ID: u.ID, Email: u.Email, Name: u.Name, Role: u.Role}
}
