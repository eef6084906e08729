package domain

import "time"

// User is the domain entity for a user account. PasswordHash is empty for
// accounts created through Google sign-in.
type User struct {
	ID           int64
	Email        string
	PasswordHash string
	GoogleSub    *string
	CreatedAt    time.Time
}
