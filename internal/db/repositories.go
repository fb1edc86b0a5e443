package db

import "gorm.io/gorm"

type Repositories struct {
	Users       *UserRepository
	Metrics     *DailyMetricRepository
	ChartPoints *ChartPointRepository
}

func NewRepositories(database *gorm.DB) *Repositories {
	return &Repositories{
		Users:       NewUserRepository(database),
		Metrics:     NewDailyMetricRepository(database),
		ChartPoints: NewChartPointRepository(database),
	}
}
