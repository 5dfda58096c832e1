package entities

import "time"

// User represents a user entity in the database
type User struct {
	ID           string    `json:"id"` // UUID
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"` // Don't expose password hash in JSON
	Name         string    `json:"name"`
	Bio          *string   `json:"bio"` // null until the user sets it
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
