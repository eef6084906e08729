package domain

import "time"

// Device is a registered push target for a user (one row per Expo push token).
type Device struct {
	ID        int64
	UserID    int64
	PushToken string
	Platform  string
	CreatedAt time.Time
}
