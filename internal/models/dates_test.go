package models_test

import (
	"testing"
	"time"

	"class_hub/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatPostedDate(t *testing.T) {
	moment := time.Date(2025, 12, 25, 23, 59, 59, 0, time.UTC)
	assert.Equal(t, "25/12/2025", models.FormatPostedDate(moment))

	// Форматирование приводит момент к UTC.
	plus3 := time.FixedZone("UTC+3", 3*60*60)
	assert.Equal(t, "25/12/2025", models.FormatPostedDate(time.Date(2025, 12, 26, 1, 30, 0, 0, plus3)))
}

func TestParseDueDate(t *testing.T) {
	due, err := models.ParseDueDate("2025-09-01")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC), due)

	_, err = models.ParseDueDate("01/09/2025")
	assert.Error(t, err)
}

func TestTodayIsCalendarDay(t *testing.T) {
	today := models.Today()
	assert.Equal(t, 0, today.Hour())
	assert.Equal(t, 0, today.Minute())
	assert.Equal(t, 0, today.Second())
	assert.Equal(t, time.UTC, today.Location())
}
