package services

import (
	"context"
	"errors"
	"time"

	"github.com/vitalsboard/vitals/internal/models"
)

var (
	ErrNegativeValue     = errors.New("value cannot be negative")
	ErrMetricNotFound    = errors.New("metric record not found")
	ErrUnknownMetricType = errors.New("unknown metric type")
)

type MetricRepository interface {
	ListByUserRange(ctx context.Context, userID uint, metricType string, rangeStart time.Time, rangeEnd time.Time) ([]models.DailyMetric, error)
	FindByUserAndDay(ctx context.Context, userID uint, metricType string, dayStart time.Time, dayEnd time.Time) (models.DailyMetric, bool, error)
	FindByIDForUser(ctx context.Context, recordID uint, userID uint, metricType string) (models.DailyMetric, bool, error)
	UpsertByDay(ctx context.Context, record *models.DailyMetric) error
	CreateMissing(ctx context.Context, records []models.DailyMetric) error
	UpdateValueByID(ctx context.Context, recordID uint, value float64, updatedAt time.Time) error
}

// MetricService is the daily-metric ledger: one record per user per calendar
// day per metric type, last write for a day wins.
type MetricService struct {
	metrics      MetricRepository
	location     *time.Location
	storeTimeout time.Duration
}

func NewMetricService(metrics MetricRepository, location *time.Location, storeTimeout time.Duration) *MetricService {
	if location == nil {
		location = time.UTC
	}
	return &MetricService{
		metrics:      metrics,
		location:     location,
		storeTimeout: storeTimeout,
	}
}

// UpsertToday writes the value for the reference day, overwriting an
// existing record for that day. The write itself is a single conditional
// upsert against the unique day index, so concurrent calls for the same day
// cannot produce duplicate rows. The returned flag reports whether a record
// for the day existed before the call and only decides the response status.
func (service *MetricService) UpsertToday(ctx context.Context, userID uint, metricType string, value float64, reference time.Time) (models.DailyMetric, bool, error) {
	if !models.IsKnownMetricType(metricType) {
		return models.DailyMetric{}, false, ErrUnknownMetricType
	}
	if value < 0 {
		return models.DailyMetric{}, false, ErrNegativeValue
	}

	ctx, cancel := storeContext(ctx, service.storeTimeout)
	defer cancel()

	dayStart, dayEnd := DayRange(reference, service.location)
	_, existed, err := service.metrics.FindByUserAndDay(ctx, userID, metricType, dayStart, dayEnd)
	if err != nil {
		return models.DailyMetric{}, false, classifyStoreError(err)
	}

	now := time.Now().In(service.location)
	record := models.DailyMetric{
		UserID:     userID,
		MetricType: metricType,
		Date:       dayStart,
		DayOfWeek:  DayOfWeekLabel(dayStart),
		Value:      value,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := service.metrics.UpsertByDay(ctx, &record); err != nil {
		return models.DailyMetric{}, false, classifyStoreError(err)
	}

	// Reload so the conflict-update path returns the stored row, not the
	// transient insert candidate.
	stored, found, err := service.metrics.FindByUserAndDay(ctx, userID, metricType, dayStart, dayEnd)
	if err != nil {
		return models.DailyMetric{}, false, classifyStoreError(err)
	}
	if !found {
		return models.DailyMetric{}, false, ErrMetricNotFound
	}
	return stored, !existed, nil
}

// WeeklyMetrics returns the reference day's Sunday-based week in ascending
// date order. An entirely empty week is backfilled with seven persisted
// zero-value records; a week with any stored record is returned as-is, even
// when days are missing. The all-or-nothing rule is deliberate and must not
// be replaced with per-day gap filling.
func (service *MetricService) WeeklyMetrics(ctx context.Context, userID uint, metricType string, reference time.Time) ([]models.DailyMetric, error) {
	if !models.IsKnownMetricType(metricType) {
		return nil, ErrUnknownMetricType
	}

	ctx, cancel := storeContext(ctx, service.storeTimeout)
	defer cancel()

	weekStart, weekEnd := WeekRange(reference, service.location)
	records, err := service.metrics.ListByUserRange(ctx, userID, metricType, weekStart, weekEnd)
	if err != nil {
		return nil, classifyStoreError(err)
	}
	if len(records) > 0 {
		return records, nil
	}

	now := time.Now().In(service.location)
	placeholders := make([]models.DailyMetric, 0, 7)
	for offset := 0; offset < 7; offset++ {
		day := weekStart.AddDate(0, 0, offset)
		placeholders = append(placeholders, models.DailyMetric{
			UserID:     userID,
			MetricType: metricType,
			Date:       day,
			DayOfWeek:  DayOfWeekLabel(day),
			Value:      0,
			CreatedAt:  now,
			UpdatedAt:  now,
		})
	}
	if err := service.metrics.CreateMissing(ctx, placeholders); err != nil {
		return nil, classifyStoreError(err)
	}

	backfilled, err := service.metrics.ListByUserRange(ctx, userID, metricType, weekStart, weekEnd)
	if err != nil {
		return nil, classifyStoreError(err)
	}
	return backfilled, nil
}

// UpdateValue overwrites the value of a record by id, refusing records that
// do not belong to the caller.
func (service *MetricService) UpdateValue(ctx context.Context, userID uint, metricType string, recordID uint, value float64) error {
	if !models.IsKnownMetricType(metricType) {
		return ErrUnknownMetricType
	}
	if value < 0 {
		return ErrNegativeValue
	}

	ctx, cancel := storeContext(ctx, service.storeTimeout)
	defer cancel()

	_, found, err := service.metrics.FindByIDForUser(ctx, recordID, userID, metricType)
	if err != nil {
		return classifyStoreError(err)
	}
	if !found {
		return ErrMetricNotFound
	}

	now := time.Now().In(service.location)
	return classifyStoreError(service.metrics.UpdateValueByID(ctx, recordID, value, now))
}
