package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/weatherwidget/backend/internal/config"
	"github.com/weatherwidget/backend/internal/delivery/http"
	"github.com/weatherwidget/backend/internal/service"
	"github.com/weatherwidget/backend/internal/widget"
)

func main() {
	cfg := config.Load()

	// Dependency Injection: Services
	weatherSvc := service.NewWeatherService(cfg.OpenWeatherAPIKey,
		service.WithBaseURL(cfg.OpenWeatherBaseURL),
		service.WithIconURL(cfg.OpenWeatherIconURL),
		service.WithTimeout(cfg.HTTPTimeout),
	)
	if weatherSvc.Mock() {
		log.Println("OPENWEATHER_API_KEY not set, serving demo data")
	}
	sessions := widget.NewRegistry(weatherSvc, cfg.SessionTTL)

	// Fiber App
	app := fiber.New(fiber.Config{
		AppName:      "Weather Widget v1.0",
		ReadTimeout:  10 * time.Second,
		WriteTimeout: cfg.HTTPTimeout + 5*time.Second,
		ErrorHandler: http.ErrorHandler,
		Views:        http.NewViews(),
	})

	// Middleware
	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${status} - ${method} ${path} (${latency})\n",
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept",
	}))

	// Routes
	http.SetupRoutes(app, http.NewHandler(weatherSvc, sessions, weatherSvc.Mock()))

	// Graceful shutdown
	go func() {
		log.Printf("Server starting on :%s (%s)", cfg.Port, cfg.Env)
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.Fatalf("Server error: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	if err := app.ShutdownWithTimeout(5 * time.Second); err != nil {
		log.Printf("Server forced to shutdown: %v", err)
	}
	log.Println("Server exited gracefully")
}
