package services

import "time"

func DateAtLocation(value time.Time, location *time.Location) time.Time {
	if location == nil {
		location = time.UTC
	}
	localized := value.In(location)
	year, month, day := localized.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, location)
}

func DayRange(value time.Time, location *time.Location) (time.Time, time.Time) {
	start := DateAtLocation(value, location)
	return start, start.AddDate(0, 0, 1)
}

// WeekRange returns the Sunday-through-Saturday window containing the
// reference day, as a half-open [start, end) interval at day granularity.
func WeekRange(reference time.Time, location *time.Location) (time.Time, time.Time) {
	day := DateAtLocation(reference, location)
	start := day.AddDate(0, 0, -int(day.Weekday()))
	return start, start.AddDate(0, 0, 7)
}

// DayOfWeekLabel renders the English weekday name stored alongside each
// daily record, matching what the dashboard front-end expects.
func DayOfWeekLabel(day time.Time) string {
	return day.Weekday().String()
}
