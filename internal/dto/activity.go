package dto

import "time"

// ActivityResponse is a single audit-log entry.
type ActivityResponse struct {
	ID          int64     `json:"id"`
	Type        string    `json:"type"`
	Description string    `json:"description"`
	RelatedID   *int64    `json:"related_id,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

type ListActivitiesResponse struct {
	Items []ActivityResponse `json:"items"`
}
