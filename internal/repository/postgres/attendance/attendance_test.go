package attendance

import (
	"net/http"
	"testing"
	"time"

	"hrm/backend/foundation/web"
	"hrm/backend/internal/entity"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyAction_InvalidAction(t *testing.T) {
	_, _, err := applyAction(nil, "lunch", time.Now())
	require.Error(t, err)

	var webErr *web.Error
	require.True(t, errors.As(err, &webErr))
	assert.Equal(t, http.StatusBadRequest, webErr.Status)
}

func TestApplyAction_FirstCheckIn(t *testing.T) {
	now := time.Date(2026, 3, 2, 9, 15, 0, 0, time.UTC)

	record, created, err := applyAction(nil, ActionCheckIn, now)
	require.NoError(t, err)
	assert.True(t, created)

	require.NotNil(t, record.WorkDay)
	assert.Equal(t, time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC), *record.WorkDay)

	require.NotNil(t, record.CheckIn)
	assert.Equal(t, now, *record.CheckIn)
	assert.Nil(t, record.CheckOut)

	require.NotNil(t, record.Status)
	assert.Equal(t, entity.AttendanceStatusPresent, *record.Status)
}

func TestApplyAction_LoneCheckOut(t *testing.T) {
	now := time.Date(2026, 3, 2, 18, 0, 0, 0, time.UTC)

	record, created, err := applyAction(nil, ActionCheckOut, now)
	require.NoError(t, err)
	assert.True(t, created)

	assert.Nil(t, record.CheckIn)
	require.NotNil(t, record.CheckOut)
	assert.Equal(t, now, *record.CheckOut)

	require.NotNil(t, record.Status)
	assert.Equal(t, entity.AttendanceStatusAbsent, *record.Status)
}

func TestApplyAction_CheckOutKeepsStatus(t *testing.T) {
	checkIn := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	day := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	present := entity.AttendanceStatusPresent

	existing := entity.Attendance{
		WorkDay: &day,
		CheckIn: &checkIn,
		Status:  &present,
	}
	existing.ID = 7

	now := checkIn.Add(9 * time.Hour)
	record, created, err := applyAction(&existing, ActionCheckOut, now)
	require.NoError(t, err)
	assert.False(t, created)

	require.NotNil(t, record.CheckIn)
	assert.Equal(t, checkIn, *record.CheckIn)
	require.NotNil(t, record.CheckOut)
	assert.Equal(t, now, *record.CheckOut)
	require.NotNil(t, record.Status)
	assert.Equal(t, entity.AttendanceStatusPresent, *record.Status)
}

func TestApplyAction_CheckInForcesPresent(t *testing.T) {
	day := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	checkOut := time.Date(2026, 3, 2, 7, 45, 0, 0, time.UTC)
	absent := entity.AttendanceStatusAbsent

	// A lone check-out earlier in the day left the record Absent.
	existing := entity.Attendance{
		WorkDay:  &day,
		CheckOut: &checkOut,
		Status:   &absent,
	}
	existing.ID = 3

	now := checkOut.Add(30 * time.Minute)
	record, created, err := applyAction(&existing, ActionCheckIn, now)
	require.NoError(t, err)
	assert.False(t, created)

	require.NotNil(t, record.CheckIn)
	assert.Equal(t, now, *record.CheckIn)
	require.NotNil(t, record.Status)
	assert.Equal(t, entity.AttendanceStatusPresent, *record.Status)

	// The earlier check-out survives.
	require.NotNil(t, record.CheckOut)
	assert.Equal(t, checkOut, *record.CheckOut)
}

func TestApplyAction_RepeatedCheckInSameDay(t *testing.T) {
	day := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	first := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	present := entity.AttendanceStatusPresent

	existing := entity.Attendance{
		WorkDay: &day,
		CheckIn: &first,
		Status:  &present,
	}
	existing.ID = 11

	second := first.Add(2 * time.Hour)
	record, created, err := applyAction(&existing, ActionCheckIn, second)
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, 11, record.ID)

	require.NotNil(t, record.CheckIn)
	assert.Equal(t, second, *record.CheckIn)
}

func TestTruncateToDay(t *testing.T) {
	in := time.Date(2026, 7, 14, 23, 59, 59, 123, time.UTC)
	assert.Equal(t, time.Date(2026, 7, 14, 0, 0, 0, 0, time.UTC), truncateToDay(in))
}

func TestParseTimestamp(t *testing.T) {
	got, err := parseTimestamp(nil)
	require.NoError(t, err)
	assert.Nil(t, got)

	value := "2026-03-02T09:00:00Z"
	got, err = parseTimestamp(&value)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC), got.UTC())

	bad := "not-a-time"
	_, err = parseTimestamp(&bad)
	assert.Error(t, err)
}
