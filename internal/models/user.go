package models

import "time"

type User struct {
	ID               uint   `gorm:"primaryKey"`
	Name             string `gorm:"not null"`
	Email            string `gorm:"uniqueIndex;not null"`
	PasswordHash     string `gorm:"not null"`
	Age              *int
	Weight           *float64
	Height           *float64
	Gender           *string
	ProfileImagePath *string
	CreatedAt        time.Time `gorm:"not null"`
}
