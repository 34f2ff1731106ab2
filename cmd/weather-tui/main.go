package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/weatherwidget/backend/internal/config"
	"github.com/weatherwidget/backend/internal/service"
	"github.com/weatherwidget/backend/internal/tui"
	"github.com/weatherwidget/backend/internal/widget"
)

func main() {
	cfg := config.Load()

	// Anything written to the terminal would corrupt the UI
	if cfg.TUILogFile != "" {
		f, err := tea.LogToFile(cfg.TUILogFile, "weather")
		if err != nil {
			fmt.Fprintf(os.Stderr, "could not open log file: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	weatherSvc := service.NewWeatherService(cfg.OpenWeatherAPIKey,
		service.WithBaseURL(cfg.OpenWeatherBaseURL),
		service.WithIconURL(cfg.OpenWeatherIconURL),
		service.WithTimeout(cfg.HTTPTimeout),
	)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	app := tui.NewApp(ctx, widget.New(weatherSvc))
	if _, err := tea.NewProgram(app, tea.WithAltScreen()).Run(); err != nil {
		fmt.Fprintf(os.Stderr, "weather-tui: %v\n", err)
		os.Exit(1)
	}
}
