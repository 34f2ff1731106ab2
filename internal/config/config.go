package config

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Config holds settings shared by the web server and the terminal UI
type Config struct {
	OpenWeatherAPIKey  string
	OpenWeatherBaseURL string
	OpenWeatherIconURL string
	HTTPTimeout        time.Duration
	SessionTTL         time.Duration
	Port               string
	Env                string
	TUILogFile         string
}

// Load reads an optional .env file and then the environment
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment")
	}
	return FromEnv()
}

// FromEnv builds a Config from the process environment only
func FromEnv() *Config {
	return &Config{
		OpenWeatherAPIKey:  getEnv("OPENWEATHER_API_KEY", ""),
		OpenWeatherBaseURL: getEnv("OPENWEATHER_BASE_URL", "https://api.openweathermap.org/data/2.5/weather"),
		OpenWeatherIconURL: getEnv("OPENWEATHER_ICON_URL", "https://openweathermap.org/img/wn/%s@2x.png"),
		HTTPTimeout:        getDuration("WEATHER_HTTP_TIMEOUT", 10*time.Second),
		SessionTTL:         getDuration("SESSION_TTL", 30*time.Minute),
		Port:               getEnv("PORT", "8080"),
		Env:                getEnv("GO_ENV", "development"),
		TUILogFile:         getEnv("WEATHER_TUI_LOG", ""),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getDuration(key string, defaultValue time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(v)
	if err != nil || d < 0 {
		log.Printf("Invalid %s=%q, using %s", key, v, defaultValue)
		return defaultValue
	}
	return d
}
