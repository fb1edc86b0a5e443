package db

import (
	"context"

	"github.com/vitalsboard/vitals/internal/models"
	"gorm.io/gorm"
)

type ChartPointRepository struct {
	database *gorm.DB
}

func NewChartPointRepository(database *gorm.DB) *ChartPointRepository {
	return &ChartPointRepository{database: database}
}

func (repo *ChartPointRepository) ListSortedByDate(ctx context.Context) ([]models.ChartPoint, error) {
	points := make([]models.ChartPoint, 0)
	if err := repo.database.WithContext(ctx).Order("date ASC, id ASC").Find(&points).Error; err != nil {
		return nil, err
	}
	return points, nil
}

func (repo *ChartPointRepository) FindByID(ctx context.Context, pointID uint) (models.ChartPoint, bool, error) {
	point := models.ChartPoint{}
	result := repo.database.WithContext(ctx).Where("id = ?", pointID).Limit(1).Find(&point)
	if result.Error != nil {
		return models.ChartPoint{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.ChartPoint{}, false, nil
	}
	return point, true, nil
}

func (repo *ChartPointRepository) Create(ctx context.Context, point *models.ChartPoint) error {
	return repo.database.WithContext(ctx).Create(point).Error
}

// UpdateByID reports how many rows matched so the caller can tell a missing
// row from a successful write.
func (repo *ChartPointRepository) UpdateByID(ctx context.Context, pointID uint, updates map[string]any) (int64, error) {
	result := repo.database.WithContext(ctx).Model(&models.ChartPoint{}).
		Where("id = ?", pointID).
		Updates(updates)
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}

func (repo *ChartPointRepository) DeleteByID(ctx context.Context, pointID uint) error {
	return repo.database.WithContext(ctx).Delete(&models.ChartPoint{}, pointID).Error
}
