package domain

import "time"

// ActivityTypeMedication is the only activity type the app writes today.
const ActivityTypeMedication = "medication"

// Activity is an append-only audit-log row describing a user action.
// Never mutated or deleted by the application.
type Activity struct {
	ID          int64
	Type        string
	Description string
	UserID      int64
	RelatedID   *int64
	CreatedAt   time.Time
}
