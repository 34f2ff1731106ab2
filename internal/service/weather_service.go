package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/weatherwidget/backend/internal/domain"
	"github.com/weatherwidget/backend/pkg/utils"
)

const (
	DefaultBaseURL = "https://api.openweathermap.org/data/2.5/weather"
	DefaultIconURL = "https://openweathermap.org/img/wn/%s@2x.png"
	DefaultTimeout = 10 * time.Second
)

// WeatherService handles weather data fetching
type WeatherService struct {
	apiKey     string
	baseURL    string
	iconURL    string
	httpClient *http.Client
}

// Option configures a WeatherService
type Option func(*WeatherService)

// WithBaseURL overrides the current-weather endpoint
func WithBaseURL(u string) Option {
	return func(s *WeatherService) {
		if u != "" {
			s.baseURL = u
		}
	}
}

// WithIconURL overrides the icon template, which must contain one %s
func WithIconURL(tmpl string) Option {
	return func(s *WeatherService) {
		if tmpl != "" {
			s.iconURL = tmpl
		}
	}
}

// WithTimeout sets the HTTP client timeout, zero means none
func WithTimeout(d time.Duration) Option {
	return func(s *WeatherService) {
		s.httpClient.Timeout = d
	}
}

// WithHTTPClient replaces the HTTP client entirely
func WithHTTPClient(c *http.Client) Option {
	return func(s *WeatherService) {
		if c != nil {
			s.httpClient = c
		}
	}
}

// NewWeatherService creates a new weather service
func NewWeatherService(apiKey string, opts ...Option) *WeatherService {
	s := &WeatherService{
		apiKey:  apiKey,
		baseURL: DefaultBaseURL,
		iconURL: DefaultIconURL,
		httpClient: &http.Client{
			Timeout: DefaultTimeout,
		},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// OpenWeatherResponse represents the OpenWeatherMap API response.
// Blocks are pointers so a missing block can be told apart from zero values.
type OpenWeatherResponse struct {
	Name string `json:"name"`
	Main *struct {
		Temp      float64 `json:"temp"`
		FeelsLike float64 `json:"feels_like"`
		Humidity  int     `json:"humidity"`
		Pressure  int     `json:"pressure"`
	} `json:"main"`
	Weather []struct {
		Description string `json:"description"`
		Icon        string `json:"icon"`
	} `json:"weather"`
	Wind *struct {
		Speed float64 `json:"speed"`
	} `json:"wind"`
}

// openWeatherError is the body sent with non-2xx statuses, e.g.
// {"cod":"404","message":"city not found"}
type openWeatherError struct {
	Message string `json:"message"`
}

// Mock reports whether lookups return demo data because no API key is set
func (s *WeatherService) Mock() bool {
	return s.apiKey == ""
}

// Lookup fetches current weather for a city
func (s *WeatherService) Lookup(ctx context.Context, city string) domain.ProviderResult {
	// Return mock data if no API key
	if s.apiKey == "" {
		return domain.ProviderSuccess{View: s.getMockWeather(city)}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.requestURL(city), nil)
	if err != nil {
		return transportFailure(fmt.Errorf("weather: failed to create request: %w", err))
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return transportFailure(fmt.Errorf("weather: request failed: %w", err))
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var apiErr openWeatherError
		if err := json.NewDecoder(resp.Body).Decode(&apiErr); err != nil {
			return transportFailure(fmt.Errorf("weather: failed to decode error response: %w", err))
		}
		msg := apiErr.Message
		if msg == "" {
			msg = domain.MsgDefaultNotFound
		}
		return domain.ProviderFailure{Kind: domain.FailureProvider, Status: resp.StatusCode, Message: msg}
	}

	var owResp OpenWeatherResponse
	if err := json.NewDecoder(resp.Body).Decode(&owResp); err != nil {
		return transportFailure(fmt.Errorf("weather: failed to decode response: %w", err))
	}

	if len(owResp.Weather) == 0 || owResp.Main == nil || owResp.Wind == nil {
		return domain.ProviderFailure{Kind: domain.FailureMalformed, Status: resp.StatusCode, Message: domain.MsgInvalidData}
	}

	return domain.ProviderSuccess{View: domain.WeatherView{
		Icon:        fmt.Sprintf(s.iconURL, owResp.Weather[0].Icon),
		City:        owResp.Name,
		Temp:        utils.RoundHalfUp(owResp.Main.Temp),
		Description: utils.CapitalizeFirst(owResp.Weather[0].Description),
		Humidity:    owResp.Main.Humidity,
		WindSpeed:   owResp.Wind.Speed,
		FeelsLike:   utils.RoundHalfUp(owResp.Main.FeelsLike),
		Pressure:    owResp.Main.Pressure,
	}}
}

func (s *WeatherService) requestURL(city string) string {
	q := url.Values{}
	q.Set("q", city)
	q.Set("appid", s.apiKey)
	q.Set("units", "metric")

	sep := "?"
	if strings.Contains(s.baseURL, "?") {
		sep = "&"
	}
	return s.baseURL + sep + q.Encode()
}

// transportFailure builds a failure whose message never includes the
// request URL, which carries both the city and the API key.
func transportFailure(err error) domain.ProviderFailure {
	msg := err.Error()
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		msg = "weather: request failed: " + urlErr.Err.Error()
	}
	return domain.ProviderFailure{Kind: domain.FailureTransport, Message: msg, Err: err}
}

// getMockWeather returns demo conditions for any city
func (s *WeatherService) getMockWeather(city string) domain.WeatherView {
	month := time.Now().Month()
	var temp, feelsLike float64
	var description, icon string

	switch {
	case month >= 12 || month <= 2: // Winter
		temp, feelsLike = -8.0, -15.0
		description, icon = "light snow", "13d"
	case month >= 3 && month <= 5: // Spring
		temp, feelsLike = 12.0, 10.0
		description, icon = "scattered clouds", "03d"
	case month >= 6 && month <= 8: // Summer
		temp, feelsLike = 28.0, 30.0
		description, icon = "clear sky", "01d"
	default: // Autumn
		temp, feelsLike = 8.0, 5.0
		description, icon = "light rain", "10d"
	}

	return domain.WeatherView{
		Icon:        fmt.Sprintf(s.iconURL, icon),
		City:        utils.CapitalizeFirst(strings.TrimSpace(city)),
		Temp:        utils.RoundHalfUp(temp),
		Description: utils.CapitalizeFirst(description),
		Humidity:    65,
		WindSpeed:   3.5,
		FeelsLike:   utils.RoundHalfUp(feelsLike),
		Pressure:    1015,
		IsMock:      true,
	}
}
