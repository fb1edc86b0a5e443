package services

import (
	"context"
	"errors"
	"time"

	"github.com/vitalsboard/vitals/internal/models"
)

var (
	ErrInvalidChartValue = errors.New("chart value must be positive")
	ErrChartNotFound     = errors.New("chart point not found")
	ErrChartConflict     = errors.New("chart point modified concurrently")
)

type ChartPointRepository interface {
	ListSortedByDate(ctx context.Context) ([]models.ChartPoint, error)
	FindByID(ctx context.Context, pointID uint) (models.ChartPoint, bool, error)
	Create(ctx context.Context, point *models.ChartPoint) error
	UpdateByID(ctx context.Context, pointID uint, updates map[string]any) (int64, error)
	DeleteByID(ctx context.Context, pointID uint) error
}

// ChartService manages the generic chart data set. Records carry no user
// scoping; any caller may read or modify any point.
type ChartService struct {
	points       ChartPointRepository
	storeTimeout time.Duration
}

func NewChartService(points ChartPointRepository, storeTimeout time.Duration) *ChartService {
	return &ChartService{
		points:       points,
		storeTimeout: storeTimeout,
	}
}

func (service *ChartService) ListSortedByDate(ctx context.Context) ([]models.ChartPoint, error) {
	ctx, cancel := storeContext(ctx, service.storeTimeout)
	defer cancel()

	points, err := service.points.ListSortedByDate(ctx)
	if err != nil {
		return nil, classifyStoreError(err)
	}
	return points, nil
}

func (service *ChartService) Create(ctx context.Context, value float64) (models.ChartPoint, error) {
	if value <= 0 {
		return models.ChartPoint{}, ErrInvalidChartValue
	}

	ctx, cancel := storeContext(ctx, service.storeTimeout)
	defer cancel()

	point := models.ChartPoint{Value: value, Date: time.Now().UTC()}
	if err := service.points.Create(ctx, &point); err != nil {
		return models.ChartPoint{}, classifyStoreError(err)
	}
	return point, nil
}

// Update overwrites a point by id. When the write matches no row, existence
// is re-checked to tell a concurrently deleted point (not found) from any
// other conflict.
func (service *ChartService) Update(ctx context.Context, pointID uint, value float64, date *time.Time) error {
	ctx, cancel := storeContext(ctx, service.storeTimeout)
	defer cancel()

	updates := map[string]any{"value": value}
	if date != nil && !date.IsZero() {
		updates["date"] = *date
	}

	affected, err := service.points.UpdateByID(ctx, pointID, updates)
	if err != nil {
		return classifyStoreError(err)
	}
	if affected > 0 {
		return nil
	}

	_, found, err := service.points.FindByID(ctx, pointID)
	if err != nil {
		return classifyStoreError(err)
	}
	if !found {
		return ErrChartNotFound
	}
	return ErrChartConflict
}

func (service *ChartService) Delete(ctx context.Context, pointID uint) error {
	ctx, cancel := storeContext(ctx, service.storeTimeout)
	defer cancel()

	_, found, err := service.points.FindByID(ctx, pointID)
	if err != nil {
		return classifyStoreError(err)
	}
	if !found {
		return ErrChartNotFound
	}
	return classifyStoreError(service.points.DeleteByID(ctx, pointID))
}
