package service

import (
	"context"
	"testing"

	"github.com/fakhrymubarak/weather-station/internal/config"
	"github.com/fakhrymubarak/weather-station/internal/model"
	"github.com/fakhrymubarak/weather-station/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

// Mock repository for testing
type mockWeatherRepository struct {
	shouldError bool
	mockData    *model.WeatherResponse

	gotCity        string
	gotCountryCode string
	gotAPIKey      string
}

func (m *mockWeatherRepository) GetWeather(ctx context.Context, city, countryCode, apiKey string) (*model.WeatherResponse, error) {
	m.gotCity, m.gotCountryCode, m.gotAPIKey = city, countryCode, apiKey
	if m.shouldError {
		return nil, repository.ErrLocationNotFound
	}
	return m.mockData, nil
}

func TestWeatherService_GetWeather(t *testing.T) {
	tests := []struct {
		name        string
		city        string
		countryCode string
		shouldError bool
		mockData    *model.WeatherResponse
		expectError bool
	}{
		{
			name:        "Successful weather retrieval",
			city:        "London",
			countryCode: "GB",
			shouldError: false,
			mockData: &model.WeatherResponse{
				Name:    "London",
				Weather: []model.Weather{{Description: "clear sky"}},
				Main:    model.Main{Temp: 15.2, Humidity: 60, Pressure: 1012},
				Wind:    model.Wind{Speed: 3.2},
			},
			expectError: false,
		},
		{
			name:        "Repository error",
			city:        "InvalidCity",
			countryCode: "XX",
			shouldError: true,
			mockData:    nil,
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := &mockWeatherRepository{
				shouldError: tt.shouldError,
				mockData:    tt.mockData,
			}
			service := &WeatherService{
				WeatherRepo: mockRepo,
				APIKey:      "secret",
				Logger:      zap.NewNop().Sugar(),
			}

			result, err := service.GetWeather(context.Background(), tt.city, tt.countryCode)

			assert.Equal(t, tt.city, mockRepo.gotCity)
			assert.Equal(t, tt.countryCode, mockRepo.gotCountryCode)
			assert.Equal(t, "secret", mockRepo.gotAPIKey)
			if tt.expectError {
				assert.ErrorIs(t, err, repository.ErrLocationNotFound)
				assert.Nil(t, result)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.mockData.Name, result.Name)
		})
	}
}

func TestNewWeatherService(t *testing.T) {
	conf := &config.Config{APIURL: config.DefaultOpenWeatherApiUrl, APIKey: "abc"}
	service := NewWeatherService(conf)
	require.NotNil(t, service)
	assert.NotNil(t, service.WeatherRepo)
	assert.Equal(t, "abc", service.APIKey)
}

func TestNewWeatherService_NilRepo(t *testing.T) {
	service := NewWeatherService(&config.Config{APIURL: config.DefaultOpenWeatherApiUrl}, nil)
	require.NotNil(t, service)
	assert.NotNil(t, service.WeatherRepo)
}

func TestNewWeatherService_CustomRepo(t *testing.T) {
	repo := &mockWeatherRepository{}
	service := NewWeatherService(&config.Config{APIURL: config.DefaultOpenWeatherApiUrl}, repo)
	assert.Same(t, repo, service.WeatherRepo)
}

func TestWeatherService_GetWeather_NilContext(t *testing.T) {
	mockRepo := &mockWeatherRepository{mockData: &model.WeatherResponse{Name: "London"}}
	service := &WeatherService{WeatherRepo: mockRepo}
	result, err := service.GetWeather(nil, "London", "GB")
	require.NoError(t, err)
	assert.Equal(t, "London", result.Name)
}

func TestWeatherService_GetWeather_LogsFailure(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	service := &WeatherService{
		WeatherRepo: &mockWeatherRepository{shouldError: true},
		APIKey:      "secret",
		Logger:      zap.New(core).Sugar(),
	}

	_, err := service.GetWeather(context.Background(), "Nowhere", "ZZ")
	require.Error(t, err)

	entries := logs.FilterMessage("Weather fetch failed").All()
	require.Len(t, entries, 1)
	assert.Equal(t, zapcore.InfoLevel, entries[0].Level)
	assert.Equal(t, "Nowhere", entries[0].ContextMap()["city"])
	assert.NotContains(t, entries[0].ContextMap(), "api_key")
}
