package domain

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyBackground(t *testing.T) {
	cases := map[string]BackgroundStyle{
		"":                      BackgroundDefault,
		"Light rain":            BackgroundRain,
		"RAIN":                  BackgroundRain,
		"Overcast clouds":       BackgroundCloud,
		"Light snow":            BackgroundSnow,
		"Clear sky":             BackgroundClear,
		"Mist":                  BackgroundDefault,
		"Thunderstorm":          BackgroundDefault,
		"Light rain and snow":   BackgroundRain,
		"Snow clouds":           BackgroundCloud,
		"Clear after the rain":  BackgroundRain,
		"Freezing drizzle":      BackgroundDefault,
		"Scattered clouds":      BackgroundCloud,
		"clearing, some snow":   BackgroundSnow,
		"Shower rain and cloud": BackgroundRain,
	}
	for desc, want := range cases {
		assert.Equal(t, want, ClassifyBackground(desc), "ClassifyBackground(%q)", desc)
	}
}

func TestClassifyBackgroundIsPureAndTotal(t *testing.T) {
	valid := map[BackgroundStyle]bool{
		BackgroundRain: true, BackgroundCloud: true, BackgroundSnow: true,
		BackgroundClear: true, BackgroundDefault: true,
	}
	inputs := []string{"", " ", "rain", "☀", "\x00", "cloudy with a chance of meatballs", "CLEAR"}
	for _, in := range inputs {
		first := ClassifyBackground(in)
		assert.True(t, valid[first], "unexpected style %q for %q", first, in)
		assert.Equal(t, first, ClassifyBackground(in))
	}
}

func TestDisplayMessage(t *testing.T) {
	cases := []struct {
		failure ProviderFailure
		want    string
	}{
		{ProviderFailure{Kind: FailureEmptyQuery, Message: MsgEmptyQuery}, "Please enter a city name."},
		{ProviderFailure{Kind: FailureProvider, Message: "city not found"}, "City not found. Please check spelling."},
		{ProviderFailure{Kind: FailureProvider, Message: "CITY NOT FOUND"}, "City not found. Please check spelling."},
		{ProviderFailure{Kind: FailureProvider, Message: MsgDefaultNotFound}, "City not found. Please check spelling."},
		{ProviderFailure{Kind: FailureTransport, Message: "status 404"}, "City not found. Please check spelling."},
		{ProviderFailure{Kind: FailureMalformed, Message: MsgInvalidData}, "Failed to fetch weather data. Please try again."},
		{ProviderFailure{Kind: FailureTransport, Message: "connection refused"}, "Failed to fetch weather data. Please try again."},
		{ProviderFailure{Kind: FailureProvider, Message: "Invalid API key"}, "Failed to fetch weather data. Please try again."},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, DisplayMessage(tc.failure), "message %q", tc.failure.Message)
	}
}

func TestProviderFailureError(t *testing.T) {
	cause := errors.New("boom")
	f := ProviderFailure{Kind: FailureTransport, Message: "boom", Err: cause}
	assert.ErrorIs(t, f, cause)
	assert.Equal(t, "weather: transport failure: boom", f.Error())

	f = ProviderFailure{Kind: FailureProvider, Status: 404, Message: "city not found"}
	assert.Equal(t, "weather: provider failure (status 404): city not found", f.Error())
}

func TestViewStateJSON(t *testing.T) {
	st := ViewState{
		Query:   "Paris",
		Weather: EmptyWeatherView(),
		Error:   MsgCityNotFound,
		Failure: ProviderFailure{Kind: FailureProvider, Status: 404, Message: "city not found"}.Info(),
	}

	b, err := json.Marshal(st)
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal(b, &got))
	assert.Equal(t, "Paris", got["query"])
	assert.Equal(t, false, got["loading"])
	failure := got["failure"].(map[string]any)
	assert.Equal(t, "provider", failure["kind"])
	assert.Equal(t, float64(404), failure["status"])
}

func TestEmptyWeatherView(t *testing.T) {
	v := EmptyWeatherView()
	assert.True(t, v.IsEmpty())
	assert.Equal(t, DefaultIcon, v.Icon)
	assert.Equal(t, BackgroundDefault, v.Background())
}
