package users

import "time"

// User. PasswordHash nunca sale por la API.
type User struct {
	ID           string
	FullName     string
	Email        string // trim + lower-case
	PasswordHash string
	Settings     map[string]any
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
