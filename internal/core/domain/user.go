package domain

import "time"

const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// ValidRole reports whether role is one of the known role tags.
func ValidRole(role string) bool {
	return role == RoleAdmin || role == RoleUser
}

// User models a registered account. PasswordHash is never serialized: the
// stored digest must not cross the API boundary.
type User struct {
	ID           string    `json:"id" bson:"_id,omitempty"`
	Username     string    `json:"username" bson:"username"`
	DisplayName  string    `json:"display_name" bson:"display_name"`
	PasswordHash string    `json:"-" bson:"password_hash"`
	Role         string    `json:"role" bson:"role"`
	CreatedAt    time.Time `json:"created_at" bson:"created_at"`
}
