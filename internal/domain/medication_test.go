package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseMedicationFilter(t *testing.T) {
	tests := []struct {
		in   string
		want MedicationFilter
		ok   bool
	}{
		{"", FilterActive, true},
		{"active", FilterActive, true},
		{"expired", FilterExpired, true},
		{"all", FilterAll, true},
		{"archived", "", false},
		{"Active", "", false},
	}
	for _, tt := range tests {
		got, ok := ParseMedicationFilter(tt.in)
		assert.Equal(t, tt.ok, ok, "input %q", tt.in)
		assert.Equal(t, tt.want, got, "input %q", tt.in)
	}
}

func TestMedicationActive(t *testing.T) {
	now := time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC)

	assert.True(t, Medication{EndDate: now}.Active(now), "end date == now counts as active")
	assert.True(t, Medication{EndDate: now.Add(time.Hour)}.Active(now))
	assert.False(t, Medication{EndDate: now.Add(-time.Hour)}.Active(now))
}
