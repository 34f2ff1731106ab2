package service

import (
	"github.com/weatherwidget/backend/internal/domain"
)

// WeatherProvider is re-exported from domain for convenience
type WeatherProvider = domain.WeatherProvider

var _ WeatherProvider = (*WeatherService)(nil)
