package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFromEnvDefaults(t *testing.T) {
	for _, k := range []string{"OPENWEATHER_API_KEY", "OPENWEATHER_BASE_URL", "OPENWEATHER_ICON_URL",
		"WEATHER_HTTP_TIMEOUT", "SESSION_TTL", "PORT", "GO_ENV", "WEATHER_TUI_LOG"} {
		t.Setenv(k, "")
	}

	cfg := FromEnv()

	assert.Empty(t, cfg.OpenWeatherAPIKey)
	assert.Equal(t, "https://api.openweathermap.org/data/2.5/weather", cfg.OpenWeatherBaseURL)
	assert.Equal(t, "https://openweathermap.org/img/wn/%s@2x.png", cfg.OpenWeatherIconURL)
	assert.Equal(t, 10*time.Second, cfg.HTTPTimeout)
	assert.Equal(t, 30*time.Minute, cfg.SessionTTL)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "development", cfg.Env)
}

func TestFromEnvOverrides(t *testing.T) {
	t.Setenv("OPENWEATHER_API_KEY", "abc")
	t.Setenv("WEATHER_HTTP_TIMEOUT", "3s")
	t.Setenv("SESSION_TTL", "0s")
	t.Setenv("PORT", "9000")

	cfg := FromEnv()

	assert.Equal(t, "abc", cfg.OpenWeatherAPIKey)
	assert.Equal(t, 3*time.Second, cfg.HTTPTimeout)
	assert.Equal(t, time.Duration(0), cfg.SessionTTL)
	assert.Equal(t, "9000", cfg.Port)
}

func TestFromEnvInvalidDuration(t *testing.T) {
	t.Setenv("WEATHER_HTTP_TIMEOUT", "soon")
	t.Setenv("SESSION_TTL", "-5m")

	cfg := FromEnv()

	assert.Equal(t, 10*time.Second, cfg.HTTPTimeout)
	assert.Equal(t, 30*time.Minute, cfg.SessionTTL)
}
