package user

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// RegisterRequest - POST /register
type RegisterRequest struct {
	Name     string `json:"name"`
	Username string `json:"username"`
	Password string `json:"password"`
}

func (r RegisterRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required),
		validation.Field(&r.Username, validation.Required),
		validation.Field(&r.Password, validation.Required),
	)
}

// PasswordMaxBytes is the longest password bcrypt accepts.
const PasswordMaxBytes = 72

// ValidatePassword checks the password fits in a bcrypt hash. Length counts
// bytes, not runes.
func (r RegisterRequest) ValidatePassword() error {
	return validation.Validate(r.Password, validation.Length(0, PasswordMaxBytes))
}

// LoginRequest - POST /login
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (r LoginRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Username, validation.Required),
		validation.Field(&r.Password, validation.Required),
	)
}

// LoginResponse carries the raw signed token; clients send it back as
// "Authorization: Bearer <token>".
type LoginResponse struct {
	Token string  `json:"token"`
	User  UserDTO `json:"user"`
}

// UserDTO - public user representation (safe to expose)
type UserDTO struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Username string `json:"username"`
}
