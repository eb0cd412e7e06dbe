package models

// User represents a user record in the database
type User struct {
	ID           int64  `json:"id" db:"id"`             // Primary key
	Email        string `json:"email" db:"email"`       // Unique email, used as token subject
	PasswordHash string `json:"-" db:"password_hash"`   // bcrypt hash, never serialized
	IsAdmin      bool   `json:"is_admin" db:"is_admin"` // Set once at registration
}
