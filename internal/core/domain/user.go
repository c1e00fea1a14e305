package domain

import "time"

// User is an account holder. Only identity fields live here; credential
// handling stays in the auth service.
type User struct {
	UserID       string    `json:"userId"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
}
