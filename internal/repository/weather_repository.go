package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/fakhrymubarak/weather-station/internal/config"
	"github.com/fakhrymubarak/weather-station/internal/model"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Custom error types
var (
	ErrLocationNotFound  = errors.New("location not found")
	ErrAPIKeyMissing     = errors.New("API key missing")
	ErrUnauthorized      = errors.New("API key rejected")
	ErrExternalAPI       = errors.New("external API error")
	ErrMalformedResponse = errors.New("malformed weather response")
)

// WeatherRepository defines the interface for weather data access
type WeatherRepository interface {
	GetWeather(ctx context.Context, city, countryCode, apiKey string) (*model.WeatherResponse, error)
}

// weatherRepository implements WeatherRepository against the OpenWeatherMap current weather endpoint
type weatherRepository struct {
	httpClient *http.Client
	apiURL     string
	units      string
	logger     *zap.SugaredLogger
}

// NewWeatherRepository creates a new weather repository instance. The optional client replaces the
// one built from conf.Timeout.
func NewWeatherRepository(conf *config.Config, httpClient ...*http.Client) WeatherRepository {
	client := &http.Client{Timeout: conf.Timeout}
	if len(httpClient) > 0 && httpClient[0] != nil {
		client = httpClient[0]
	}
	return &weatherRepository{
		httpClient: client,
		apiURL:     conf.APIURL,
		units:      conf.Units,
		logger:     config.GetLogger(),
	}
}

// GetWeather performs one GET for city and countryCode and decodes the current weather
func (r *weatherRepository) GetWeather(ctx context.Context, city, countryCode, apiKey string) (*model.WeatherResponse, error) {
	if apiKey == "" {
		return nil, ErrAPIKeyMissing
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, buildQueryURL(r.apiURL, city, countryCode, apiKey, r.units), nil)
	if err != nil {
		return nil, errors.Wrap(err, "build weather request")
	}

	r.logger.Debugw("Fetching weather", "city", city, "country_code", countryCode, "units", r.units)
	resp, err := r.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrExternalAPI, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: read body: %v", ErrExternalAPI, err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, statusError(resp.StatusCode, body)
	}

	return decodeWeather(body)
}

// buildQueryURL substitutes the values into the query verbatim. Reserved characters such as '&' or
// '#' in city or countryCode are not escaped and will split the query; only spaces are encoded.
func buildQueryURL(apiURL, city, countryCode, apiKey, units string) string {
	rawURL := fmt.Sprintf("%s?q=%s,%s&appid=%s", apiURL, city, countryCode, apiKey)
	if units != "" {
		rawURL += "&units=" + units
	}
	return strings.ReplaceAll(rawURL, " ", "%20")
}

func statusError(code int, body []byte) error {
	kind := ErrExternalAPI
	switch code {
	case http.StatusNotFound:
		kind = ErrLocationNotFound
	case http.StatusUnauthorized:
		kind = ErrUnauthorized
	}

	var apiErr model.APIError
	if err := json.Unmarshal(body, &apiErr); err == nil && apiErr.Message != "" {
		return fmt.Errorf("%w (HTTP %d): %s", kind, code, apiErr.Message)
	}
	return fmt.Errorf("%w (HTTP %d)", kind, code)
}
