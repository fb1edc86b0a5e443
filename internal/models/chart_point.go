package models

import "time"

// ChartPoint is the generic, user-unscoped chart data set. Any caller may
// read or modify any point.
type ChartPoint struct {
	ID    uint      `gorm:"primaryKey"`
	Value float64   `gorm:"not null"`
	Date  time.Time `gorm:"not null"`
}
