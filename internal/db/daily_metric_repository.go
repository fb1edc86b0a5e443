package db

import (
	"context"
	"time"

	"github.com/vitalsboard/vitals/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type DailyMetricRepository struct {
	database *gorm.DB
}

func NewDailyMetricRepository(database *gorm.DB) *DailyMetricRepository {
	return &DailyMetricRepository{database: database}
}

func (repo *DailyMetricRepository) ListByUserRange(ctx context.Context, userID uint, metricType string, rangeStart time.Time, rangeEnd time.Time) ([]models.DailyMetric, error) {
	records := make([]models.DailyMetric, 0)
	if err := repo.database.WithContext(ctx).
		Where("user_id = ? AND metric_type = ? AND date >= ? AND date < ?", userID, metricType, rangeStart, rangeEnd).
		Order("date ASC, id ASC").
		Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

func (repo *DailyMetricRepository) FindByUserAndDay(ctx context.Context, userID uint, metricType string, dayStart time.Time, dayEnd time.Time) (models.DailyMetric, bool, error) {
	record := models.DailyMetric{}
	result := repo.database.WithContext(ctx).
		Where("user_id = ? AND metric_type = ? AND date >= ? AND date < ?", userID, metricType, dayStart, dayEnd).
		Order("date DESC, id DESC").
		Limit(1).
		Find(&record)
	if result.Error != nil {
		return models.DailyMetric{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.DailyMetric{}, false, nil
	}
	return record, true, nil
}

func (repo *DailyMetricRepository) FindByIDForUser(ctx context.Context, recordID uint, userID uint, metricType string) (models.DailyMetric, bool, error) {
	record := models.DailyMetric{}
	result := repo.database.WithContext(ctx).
		Where("id = ? AND user_id = ? AND metric_type = ?", recordID, userID, metricType).
		Limit(1).
		Find(&record)
	if result.Error != nil {
		return models.DailyMetric{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.DailyMetric{}, false, nil
	}
	return record, true, nil
}

// UpsertByDay inserts the record or, when a row for the same
// (user_id, date, metric_type) already exists, overwrites its value in a
// single statement. The unique index makes this safe against concurrent
// writers for the same day.
func (repo *DailyMetricRepository) UpsertByDay(ctx context.Context, record *models.DailyMetric) error {
	return repo.database.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "date"}, {Name: "metric_type"}},
		DoUpdates: clause.Assignments(map[string]any{
			"value":      record.Value,
			"updated_at": record.UpdatedAt,
		}),
	}).Create(record).Error
}

// CreateMissing inserts placeholder records, silently skipping any day a
// concurrent writer already filled.
func (repo *DailyMetricRepository) CreateMissing(ctx context.Context, records []models.DailyMetric) error {
	if len(records) == 0 {
		return nil
	}
	return repo.database.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "date"}, {Name: "metric_type"}},
		DoNothing: true,
	}).Create(&records).Error
}

func (repo *DailyMetricRepository) UpdateValueByID(ctx context.Context, recordID uint, value float64, updatedAt time.Time) error {
	return repo.database.WithContext(ctx).Model(&models.DailyMetric{}).
		Where("id = ?", recordID).
		Updates(map[string]any{
			"value":      value,
			"updated_at": updatedAt,
		}).Error
}
