package dto

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// DateOrTime parses a JSON field as either date-only ("2006-01-02") or RFC3339.
// Date-only is stored as start of that day in UTC.
type DateOrTime struct{ t *time.Time }

func (d *DateOrTime) UnmarshalJSON(data []byte) error {
	var raw *string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw == nil || strings.TrimSpace(*raw) == "" {
		d.t = nil
		return nil
	}
	s := strings.TrimSpace(*raw)
	layouts := []string{
		"2006-01-02",     // date only
		time.RFC3339,     // 2006-01-02T15:04:05Z07:00
		time.RFC3339Nano, // with nanoseconds
		"2006-01-02T15:04:05",
	}
	for _, layout := range layouts {
		parsed, err := time.Parse(layout, s)
		if err == nil {
			// If it was date-only (no time component), use start of day UTC
			if layout == "2006-01-02" {
				parsed = time.Date(parsed.Year(), parsed.Month(), parsed.Day(), 0, 0, 0, 0, time.UTC)
			}
			d.t = &parsed
			return nil
		}
	}
	return fmt.Errorf("use date (YYYY-MM-DD) or RFC3339 datetime")
}

// Ptr returns *time.Time for use in service/domain.
func (d DateOrTime) Ptr() *time.Time { return d.t }

// ClockTime parses a JSON field as either a time of day ("15:04") or RFC3339.
// For "15:04" the date part is today in UTC; only the hour and minute matter
// for reminder scheduling.
type ClockTime struct{ t *time.Time }

func (c *ClockTime) UnmarshalJSON(data []byte) error {
	var raw *string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw == nil || strings.TrimSpace(*raw) == "" {
		c.t = nil
		return nil
	}
	s := strings.TrimSpace(*raw)
	if parsed, err := time.Parse("15:04", s); err == nil {
		now := time.Now().UTC()
		v := time.Date(now.Year(), now.Month(), now.Day(), parsed.Hour(), parsed.Minute(), 0, 0, time.UTC)
		c.t = &v
		return nil
	}
	for _, layout := range []string{time.RFC3339, time.RFC3339Nano} {
		if parsed, err := time.Parse(layout, s); err == nil {
			c.t = &parsed
			return nil
		}
	}
	return fmt.Errorf("use time of day (HH:MM) or RFC3339 datetime")
}

// Ptr returns *time.Time for use in service/domain.
func (c ClockTime) Ptr() *time.Time { return c.t }

type CreateMedicationRequest struct {
	Name         string     `json:"name" binding:"required,min=1,max=120"`
	Dosage       string     `json:"dosage" binding:"required,min=1,max=120"`
	Instructions string     `json:"instructions" binding:"max=1000"`
	StartDate    DateOrTime `json:"start_date"`    // optional: defaults to now
	EndDate      DateOrTime `json:"end_date"`      // optional: defaults to start + 7 days
	ReminderTime ClockTime  `json:"reminder_time"` // optional: "08:00" or RFC3339, defaults to now
}

// UpdateMedicationRequest replaces all mutable fields (full-record replacement).
type UpdateMedicationRequest struct {
	Name         string     `json:"name" binding:"required,min=1,max=120"`
	Dosage       string     `json:"dosage" binding:"required,min=1,max=120"`
	Instructions string     `json:"instructions" binding:"max=1000"`
	StartDate    DateOrTime `json:"start_date"`
	EndDate      DateOrTime `json:"end_date"`
	ReminderTime ClockTime  `json:"reminder_time"`
}

type MedicationResponse struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Dosage       string    `json:"dosage"`
	Instructions string    `json:"instructions"`
	StartDate    time.Time `json:"start_date"`
	EndDate      time.Time `json:"end_date"`
	ReminderTime time.Time `json:"reminder_time"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type ListMedicationsResponse struct {
	Items []MedicationResponse `json:"items"`
}
