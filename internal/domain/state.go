package domain

// ViewState is everything a surface needs to render the widget.
// It is replaced as a whole on every transition.
type ViewState struct {
	Query   string       `json:"query"`
	Weather WeatherView  `json:"weather"`
	Error   string       `json:"error,omitempty"`
	Loading bool         `json:"loading"`
	Failure *FailureInfo `json:"failure,omitempty"`
}

// InitialViewState is the state of a freshly opened widget
func InitialViewState() ViewState {
	return ViewState{Weather: EmptyWeatherView()}
}

// Background returns the style class for the state's current weather
func (s ViewState) Background() BackgroundStyle {
	return s.Weather.Background()
}
