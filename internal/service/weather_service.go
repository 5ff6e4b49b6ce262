package service

import (
	"context"

	"github.com/fakhrymubarak/weather-station/internal/config"
	"github.com/fakhrymubarak/weather-station/internal/model"
	"github.com/fakhrymubarak/weather-station/internal/repository"
	"go.uber.org/zap"
)

// WeatherServiceInterface is what the session loop needs to fetch weather.
type WeatherServiceInterface interface {
	GetWeather(ctx context.Context, city, countryCode string) (*model.WeatherResponse, error)
}

// WeatherService binds the configured API key to the repository.
type WeatherService struct {
	WeatherRepo repository.WeatherRepository
	APIKey      string
	Logger      *zap.SugaredLogger
}

// NewWeatherService creates a service for conf. A nil repo is replaced by the OpenWeatherMap repository.
func NewWeatherService(conf *config.Config, repo ...repository.WeatherRepository) *WeatherService {
	var weatherRepo repository.WeatherRepository
	if len(repo) > 0 && repo[0] != nil {
		weatherRepo = repo[0]
	} else {
		weatherRepo = repository.NewWeatherRepository(conf)
	}
	return &WeatherService{
		WeatherRepo: weatherRepo,
		APIKey:      conf.APIKey,
		Logger:      config.GetLogger(),
	}
}

func (s *WeatherService) GetWeather(ctx context.Context, city, countryCode string) (*model.WeatherResponse, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	weather, err := s.WeatherRepo.GetWeather(ctx, city, countryCode, s.APIKey)
	if err != nil {
		s.logger().Infow("Weather fetch failed", "city", city, "country_code", countryCode, "error", err)
		return nil, err
	}
	s.logger().Debugw("Weather fetched", "location", weather.Name, "description", weather.Description())
	return weather, nil
}

func (s *WeatherService) logger() *zap.SugaredLogger {
	if s.Logger == nil {
		return zap.NewNop().Sugar()
	}
	return s.Logger
}
