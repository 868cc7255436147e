package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsFreeMealDay(t *testing.T) {
	db := setupTestDB(t)
	svc := NewFreeMealDayService(db)
	admin := createUser(t, db, true)

	today := time.Now()
	assert.False(t, svc.IsFreeMealDay(today))

	day, err := svc.Create(admin.ID, today, "World Food Day")
	require.NoError(t, err)
	assert.True(t, svc.IsFreeMealDay(today))
	assert.False(t, svc.IsFreeMealDay(today.AddDate(0, 0, 1)))

	require.NoError(t, svc.Deactivate(day.ID))
	assert.False(t, svc.IsFreeMealDay(today))
}

func TestCreateFreeMealDay_DuplicateDate(t *testing.T) {
	db := setupTestDB(t)
	svc := NewFreeMealDayService(db)
	admin := createUser(t, db, true)

	date := time.Date(2026, 10, 20, 9, 30, 0, 0, time.UTC)
	_, err := svc.Create(admin.ID, date, "Mashujaa Day")
	require.NoError(t, err)

	// same calendar date at a different time of day still collides
	_, err = svc.Create(admin.ID, date.Add(5*time.Hour), "duplicate")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")
}

func TestUpdateFreeMealDay(t *testing.T) {
	db := setupTestDB(t)
	svc := NewFreeMealDayService(db)
	admin := createUser(t, db, true)

	day, err := svc.Create(admin.ID, time.Now(), "staff appreciation")
	require.NoError(t, err)

	reason := "staff appreciation week"
	active := false
	updated, err := svc.Update(day.ID, FreeMealDayUpdate{Reason: &reason, IsActive: &active})
	require.NoError(t, err)
	assert.Equal(t, reason, updated.Reason)
	assert.False(t, updated.IsActive)

	err = svc.Deactivate(9999)
	require.Error(t, err)
}
