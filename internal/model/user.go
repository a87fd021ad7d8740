package model

// User represents a user row. Password always holds the bcrypt hash,
// never the plaintext; ID is a caller-assigned UUID and immutable once
// created.
type User struct {
	ID       string
	Email    string
	Password string
	Name     string
}

// SignUpRequest represents a user registration request.
type SignUpRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

// SignInRequest represents a login request.
type SignInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserDTO represents user data safe for API responses (no password hash).
type UserDTO struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

// AuthResponse represents a successful authentication result.
type AuthResponse struct {
	Token string  `json:"token"`
	User  UserDTO `json:"user"`
}

// DTO converts a User to its response shape, dropping the password hash.
func (u *User) DTO() UserDTO {
	return UserDTO{
		ID:    u.ID,
		Email: u.Email,
		Name:  u.Name,
	}
}
