package domain

import "time"

// Domain entity for a medication entry. The hour and minute of ReminderTime
// carry the daily firing time of the associated reminder.
// Does not depend on Gin, Postgres or Redis.
type Medication struct {
	ID           int64
	UserID       int64
	Name         string
	Dosage       string
	Instructions string
	StartDate    time.Time
	EndDate      time.Time
	ReminderTime time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Active reports whether the medication's schedule window has not yet ended.
func (m Medication) Active(now time.Time) bool {
	return !m.EndDate.Before(now)
}

// MedicationFilter selects which medications List returns.
type MedicationFilter string

const (
	FilterActive  MedicationFilter = "active"  // end date >= now
	FilterExpired MedicationFilter = "expired" // end date < now
	FilterAll     MedicationFilter = "all"
)

// ParseMedicationFilter maps a query value to a filter. Empty means active,
// matching the default tab of the client.
func ParseMedicationFilter(s string) (MedicationFilter, bool) {
	switch MedicationFilter(s) {
	case "":
		return FilterActive, true
	case FilterActive, FilterExpired, FilterAll:
		return MedicationFilter(s), true
	}
	return "", false
}
