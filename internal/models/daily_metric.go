package models

import "time"

const (
	MetricSteps    = "steps"
	MetricCalories = "calories"
	MetricWater    = "water"
)

// DailyMetric holds one value per user per calendar day per metric type.
// The unique index is what makes the upsert-on-today path atomic.
type DailyMetric struct {
	ID         uint      `gorm:"primaryKey"`
	UserID     uint      `gorm:"not null;uniqueIndex:uidx_metric_user_date_type"`
	Date       time.Time `gorm:"type:date;not null;uniqueIndex:uidx_metric_user_date_type"`
	MetricType string    `gorm:"not null;uniqueIndex:uidx_metric_user_date_type"`
	DayOfWeek  string    `gorm:"not null"`
	Value      float64   `gorm:"not null;default:0"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func IsKnownMetricType(metricType string) bool {
	switch metricType {
	case MetricSteps, MetricCalories, MetricWater:
		return true
	default:
		return false
	}
}
