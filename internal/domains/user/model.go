package user

import (
	"time"
)

// User is the account entity. It maps to the users table and to the users
// collection when USER_STORE=mongo.
type User struct {
	ID           string    `db:"id" bson:"_id" json:"id"`
	Name         string    `db:"name" bson:"name" json:"name"`
	Username     string    `db:"username" bson:"username" json:"username"`
	PasswordHash string    `db:"password_hash" bson:"password_hash" json:"-"` // Never expose in JSON
	CreatedAt    time.Time `db:"created_at" bson:"created_at" json:"created_at"`
	UpdatedAt    time.Time `db:"updated_at" bson:"updated_at" json:"updated_at"`
}

// ToDTO converts User entity to UserDTO
func (u *User) ToDTO() UserDTO {
	return UserDTO{
		ID:       u.ID,
		Name:     u.Name,
		Username: u.Username,
	}
}
