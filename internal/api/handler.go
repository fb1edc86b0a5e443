package api

import (
	"log/slog"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/vitalsboard/vitals/internal/config"
	"github.com/vitalsboard/vitals/internal/db"
	"github.com/vitalsboard/vitals/internal/services"
)

type Handler struct {
	jwt      config.JWTConfig
	location *time.Location
	validate *validator.Validate
	logger   *slog.Logger
	auth     *services.AuthService
	metrics  *services.MetricService
	charts   *services.ChartService
}

func NewHandler(repositories *db.Repositories, cfg config.Config, location *time.Location, logger *slog.Logger) *Handler {
	if location == nil {
		location = time.UTC
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{
		jwt:      cfg.JWT,
		location: location,
		validate: validator.New(),
		logger:   logger,
		auth:     services.NewAuthService(repositories.Users, location, cfg.StoreTimeout),
		metrics:  services.NewMetricService(repositories.Metrics, location, cfg.StoreTimeout),
		charts:   services.NewChartService(repositories.ChartPoints, cfg.StoreTimeout),
	}
}

type registerInput struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type loginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type profileInput struct {
	Age              *int     `json:"age" validate:"omitempty,gte=0,lte=150"`
	Weight           *float64 `json:"weight" validate:"omitempty,gt=0"`
	Height           *float64 `json:"height" validate:"omitempty,gt=0"`
	Gender           *string  `json:"gender"`
	ProfileImagePath *string  `json:"profileImagePath"`
}

type chartPointInput struct {
	ID    uint       `json:"id"`
	Value float64    `json:"value"`
	Date  *time.Time `json:"date"`
}
