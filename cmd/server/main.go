package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"

	"github.com/weatherdash/backend/internal/cache"
	"github.com/weatherdash/backend/internal/delivery/http"
	"github.com/weatherdash/backend/internal/repository/postgres"
	"github.com/weatherdash/backend/internal/service"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment")
	}

	cfg := loadConfig()

	// Database connection
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var lookupRepo service.LookupRepository = postgres.NewMockRepository()
	if cfg.DatabaseURL != "" {
		pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
		if err != nil {
			log.Printf("Warning: Could not connect to database: %v", err)
			log.Println("Keeping lookup history in memory")
		} else {
			defer pool.Close()
			repo := postgres.NewPostgresRepository(pool)
			if err := repo.Migrate(ctx); err != nil {
				log.Printf("Warning: %v", err)
				log.Println("Keeping lookup history in memory")
			} else {
				lookupRepo = repo
				log.Println("Connected to PostgreSQL")
			}
		}
	}

	// Forecast cache
	var forecastCache cache.Cache = cache.NewMemoryCache(cfg.CacheTTL)
	if cfg.RedisURL != "" {
		rc, err := cache.NewRedisCache(cfg.RedisURL, cfg.CacheTTL)
		if err == nil {
			err = rc.Ping(ctx)
		}
		if err != nil {
			log.Printf("Warning: Could not use Redis cache: %v", err)
			log.Println("Caching forecasts in memory")
		} else {
			defer rc.Close()
			forecastCache = rc
			log.Println("Connected to Redis")
		}
	}

	// Dependency Injection: Services
	limiter := service.NewUpstreamLimiter(cfg.UpstreamRPS, cfg.UpstreamBurst)
	geocodingSvc := service.NewGeocodingService(cfg.GeocodingAPIURL, limiter)
	forecastSvc := service.NewForecastService(cfg.ForecastAPIURL, limiter, forecastCache)
	dashboardSvc := service.NewDashboardService(geocodingSvc, forecastSvc, lookupRepo)

	// Fiber App
	app := fiber.New(fiber.Config{
		AppName:      "Weather Dashboard API v1.0",
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		ErrorHandler: http.ErrorHandler,
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
	http.SetupRoutes(app, dashboardSvc, cfg.DefaultLocation)

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
	dashboardSvc.WaitBackground()
	log.Println("Server exited gracefully")
}

type Config struct {
	DatabaseURL     string
	RedisURL        string
	GeocodingAPIURL string
	ForecastAPIURL  string
	DefaultLocation string
	CacheTTL        time.Duration
	UpstreamRPS     float64
	UpstreamBurst   int
	Port            string
	Env             string
}

func loadConfig() *Config {
	return &Config{
		DatabaseURL:     getEnv("DATABASE_URL", ""),
		RedisURL:        getEnv("REDIS_URL", ""),
		GeocodingAPIURL: getEnv("GEOCODING_API_URL", "https://geocoding-api.open-meteo.com"),
		ForecastAPIURL:  getEnv("FORECAST_API_URL", "https://api.open-meteo.com"),
		DefaultLocation: getEnv("DEFAULT_LOCATION", "London"),
		CacheTTL:        getEnvDuration("CACHE_TTL", 10*time.Minute),
		UpstreamRPS:     getEnvFloat("UPSTREAM_RPS", 5),
		UpstreamBurst:   getEnvInt("UPSTREAM_BURST", 10),
		Port:            getEnv("PORT", "8080"),
		Env:             getEnv("GO_ENV", "development"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if d, err := time.ParseDuration(os.Getenv(key)); err == nil && d > 0 {
		return d
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if f, err := strconv.ParseFloat(os.Getenv(key), 64); err == nil {
		return f
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if n, err := strconv.Atoi(os.Getenv(key)); err == nil {
		return n
	}
	return defaultValue
}
