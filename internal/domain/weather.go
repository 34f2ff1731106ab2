package domain

import "context"

// DefaultIcon is shown until a lookup succeeds and after every failed one.
const DefaultIcon = "/static/default-icon.svg"

// WeatherView represents current conditions as rendered to the user
type WeatherView struct {
	Icon        string  `json:"icon"`
	City        string  `json:"city"`
	Temp        int     `json:"temp"`
	Description string  `json:"description"`
	Humidity    int     `json:"humidity"`
	WindSpeed   float64 `json:"wind"`
	FeelsLike   int     `json:"feels_like"`
	Pressure    int     `json:"pressure"`
	IsMock      bool    `json:"is_mock"`
}

// EmptyWeatherView returns the variant shown before any successful lookup
func EmptyWeatherView() WeatherView {
	return WeatherView{Icon: DefaultIcon}
}

// IsEmpty reports whether there is nothing to show besides the icon
func (v WeatherView) IsEmpty() bool {
	return v.City == ""
}

// Background returns the style class for the current description
func (v WeatherView) Background() BackgroundStyle {
	return ClassifyBackground(v.Description)
}

// WeatherProvider looks up current conditions for a city.
// Implementations never return nil.
type WeatherProvider interface {
	Lookup(ctx context.Context, city string) ProviderResult
}

// WeatherResponse wraps a lookup result for JSON clients
type WeatherResponse struct {
	Data       WeatherView     `json:"data"`
	Background BackgroundStyle `json:"background"`
	Success    bool            `json:"success"`
	Error      string          `json:"error,omitempty"`
	Failure    *FailureInfo    `json:"failure,omitempty"`
}
