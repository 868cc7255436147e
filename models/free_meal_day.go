package models

import (
	"time"

	"gorm.io/gorm"
)

// FreeMealDay marks a calendar date on which the sponsor covers meal
// cost. Dates are stored at midnight UTC; uniqueness is on the date.
type FreeMealDay struct {
	gorm.Model
	Date        time.Time `gorm:"uniqueIndex;not null"`
	Reason      string    `gorm:"type:text"`
	IsActive    bool      `gorm:"default:true"`
	CreatedByID *uint
	CreatedBy   *User `gorm:"foreignKey:CreatedByID"`
}

// DateOnly truncates t to its calendar date in UTC.
func DateOnly(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
