package dto

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateOrTime_DateOnly(t *testing.T) {
	var req CreateMedicationRequest
	body := `{"name":"Paracetamol","dosage":"500mg","start_date":"2026-03-01"}`
	require.NoError(t, json.Unmarshal([]byte(body), &req))

	got := req.StartDate.Ptr()
	require.NotNil(t, got)
	assert.Equal(t, time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC), *got)
}

func TestDateOrTime_RFC3339(t *testing.T) {
	var req CreateMedicationRequest
	body := `{"name":"Paracetamol","dosage":"500mg","end_date":"2026-03-08T15:30:00Z"}`
	require.NoError(t, json.Unmarshal([]byte(body), &req))

	got := req.EndDate.Ptr()
	require.NotNil(t, got)
	assert.Equal(t, 15, got.Hour())
	assert.Equal(t, 30, got.Minute())
}

func TestDateOrTime_EmptyAndNull(t *testing.T) {
	var req CreateMedicationRequest
	require.NoError(t, json.Unmarshal([]byte(`{"name":"a","dosage":"b","start_date":""}`), &req))
	assert.Nil(t, req.StartDate.Ptr())

	require.NoError(t, json.Unmarshal([]byte(`{"name":"a","dosage":"b","start_date":null}`), &req))
	assert.Nil(t, req.StartDate.Ptr())
}

func TestDateOrTime_Invalid(t *testing.T) {
	var req CreateMedicationRequest
	err := json.Unmarshal([]byte(`{"name":"a","dosage":"b","start_date":"01/03/2026"}`), &req)
	assert.Error(t, err)
}

func TestClockTime_HourMinute(t *testing.T) {
	var req CreateMedicationRequest
	require.NoError(t, json.Unmarshal([]byte(`{"name":"a","dosage":"b","reminder_time":"08:00"}`), &req))

	got := req.ReminderTime.Ptr()
	require.NotNil(t, got)
	assert.Equal(t, 8, got.Hour())
	assert.Equal(t, 0, got.Minute())
}

func TestClockTime_RFC3339(t *testing.T) {
	var req CreateMedicationRequest
	require.NoError(t, json.Unmarshal([]byte(`{"name":"a","dosage":"b","reminder_time":"2026-03-01T20:00:00Z"}`), &req))

	got := req.ReminderTime.Ptr()
	require.NotNil(t, got)
	assert.Equal(t, 20, got.Hour())
}

func TestClockTime_Invalid(t *testing.T) {
	var req CreateMedicationRequest
	err := json.Unmarshal([]byte(`{"name":"a","dosage":"b","reminder_time":"8 en punto"}`), &req)
	assert.Error(t, err)
}
